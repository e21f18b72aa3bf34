package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/futurelink/pathfinder/internal/catalog"
	"github.com/futurelink/pathfinder/internal/llm"
)

func completeAnswers() catalog.Answers {
	return catalog.Answers{
		Activity:  "เทคโนโลยี",
		Subject:   "วิทยาศาสตร์และคณิตศาสตร์",
		WorkStyle: "ทำงานคนเดียวอย่างมีสมาธิ",
		Passion:   "อยากแก้ปัญหาขยะพลาสติก",
	}
}

func validPayload() json.RawMessage {
	return json.RawMessage(`{
		"summary": "คุณเป็นคนที่ชอบคิดวิเคราะห์",
		"careerSuggestions": [
			{"name": "วิศวกรซอฟต์แวร์", "description": "พัฒนาระบบ", "requiredSkills": ["การเขียนโปรแกรม"]}
		],
		"educationSuggestions": [
			{"major": "วิศวกรรมคอมพิวเตอร์", "description": "เรียนรู้การออกแบบระบบ", "relatedCareers": ["วิศวกรซอฟต์แวร์"]}
		],
		"activitySuggestions": [
			{"type": "ชมรม", "name": "ชมรมหุ่นยนต์", "description": "ฝึกสร้างหุ่นยนต์"}
		],
		"userInsights": {
			"aptitudes": ["การวิเคราะห์"],
			"interests": ["เทคโนโลยี"],
			"likes": ["การแก้ปัญหา"]
		}
	}`)
}

func TestService_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPayload()})
	svc := NewService(mock, DefaultConfig())

	rec, err := svc.Generate(context.Background(), completeAnswers())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if rec.Summary == "" {
		t.Error("empty summary")
	}
	if len(rec.CareerSuggestions) != 1 || rec.CareerSuggestions[0].Name != "วิศวกรซอฟต์แวร์" {
		t.Errorf("careers = %+v", rec.CareerSuggestions)
	}
	if len(rec.EducationSuggestions) != 1 || rec.EducationSuggestions[0].Major != "วิศวกรรมคอมพิวเตอร์" {
		t.Errorf("education = %+v", rec.EducationSuggestions)
	}
	if len(rec.ActivitySuggestions) != 1 {
		t.Errorf("activities = %+v", rec.ActivitySuggestions)
	}
	if len(rec.UserInsights.Aptitudes) != 1 || rec.UserInsights.Aptitudes[0] != "การวิเคราะห์" {
		t.Errorf("aptitudes = %v", rec.UserInsights.Aptitudes)
	}

	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}
}

func TestService_GenerateSendsSchemaAndAnswers(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPayload()})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), completeAnswers()); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema != RecommendationsSchema {
		t.Error("request missing the recommendations schema")
	}
	if req.System == "" {
		t.Error("request missing system prompt")
	}
	if len(req.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(req.Messages))
	}
	for _, want := range []string{"เทคโนโลยี", "อยากแก้ปัญหาขยะพลาสติก"} {
		if !strings.Contains(req.Messages[0].Content, want) {
			t.Errorf("user message missing answer %q", want)
		}
	}
}

func TestService_GenerateRejectsIncompleteAnswers(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), catalog.Answers{Activity: "a"})
	if !errors.Is(err, ErrIncompleteAnswers) {
		t.Fatalf("error = %v, want ErrIncompleteAnswers", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times for incomplete answers", mock.CallCount())
	}
}

func TestService_GeneratePropagatesProviderError(t *testing.T) {
	provErr := &llm.ErrRateLimit{}
	mock := llm.NewMockProvider(llm.MockResponse{Err: provErr})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), completeAnswers())
	if err == nil {
		t.Fatal("Generate returned nil error")
	}
	var rateErr *llm.ErrRateLimit
	if !errors.As(err, &rateErr) {
		t.Errorf("error = %v, want wrapped ErrRateLimit", err)
	}

	// One call, no retry.
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}
}

func TestService_GenerateRejectsMalformedResponse(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `career time!`},
		{"empty summary", `{"summary": "", "careerSuggestions": [], "educationSuggestions": [], "activitySuggestions": [], "userInsights": {"aptitudes": [], "interests": [], "likes": []}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.content)})
			svc := NewService(mock, DefaultConfig())

			if _, err := svc.Generate(context.Background(), completeAnswers()); err == nil {
				t.Error("Generate returned nil error for malformed response")
			}
		})
	}
}

func TestService_GenerateNormalizesNilLists(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary": "ok", "userInsights": {}}`),
	})
	svc := NewService(mock, DefaultConfig())

	rec, err := svc.Generate(context.Background(), completeAnswers())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if rec.CareerSuggestions == nil || rec.EducationSuggestions == nil || rec.ActivitySuggestions == nil {
		t.Error("suggestion lists not normalized to empty slices")
	}
	if rec.UserInsights.Aptitudes == nil || rec.UserInsights.Interests == nil || rec.UserInsights.Likes == nil {
		t.Error("insight lists not normalized to empty slices")
	}
}
