// Package catalog holds the fixed, ordered self-assessment question set.
// The catalog is static: it is not user-configurable at runtime and every
// question writes into exactly one field of Answers.
package catalog

import "fmt"

// QuestionType selects how a question is presented and answered.
type QuestionType string

const (
	// TypeImageChoice is a choice question whose options carry image references.
	TypeImageChoice QuestionType = "image-choice"
	// TypeTextChoice is a plain multiple-choice question.
	TypeTextChoice QuestionType = "text-choice"
	// TypeFreeText is an open-ended question answered with free text.
	TypeFreeText QuestionType = "free-text"
)

// Option is one selectable answer for a choice question. Value is the
// recorded answer; Label is the display text; Image is an optional
// illustration reference for image-choice questions.
type Option struct {
	Value string
	Label string
	Image string
}

// Question is a single immutable catalog entry. Key names the Answers field
// this question populates.
type Question struct {
	ID      string
	Prompt  string
	Type    QuestionType
	Key     string
	Options []Option
}

// IsChoice reports whether the question is answered by picking an option.
func (q Question) IsChoice() bool {
	return q.Type == TypeImageChoice || q.Type == TypeTextChoice
}

// HasOption reports whether value is one of the question's declared options.
func (q Question) HasOption(value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Answer keys, one per catalog question.
const (
	KeyActivity  = "activity"
	KeySubject   = "subject"
	KeyWorkStyle = "workStyle"
	KeyPassion   = "passion"
)

// Answers is the complete set of quiz answers, one entry per question.
// It is populated one key at a time in catalog order and is complete
// exactly when every field is non-empty.
type Answers struct {
	Activity  string `json:"activity"`
	Subject   string `json:"subject"`
	WorkStyle string `json:"workStyle"`
	Passion   string `json:"passion"`
}

// Set records value under the given answer key.
func (a *Answers) Set(key, value string) error {
	switch key {
	case KeyActivity:
		a.Activity = value
	case KeySubject:
		a.Subject = value
	case KeyWorkStyle:
		a.WorkStyle = value
	case KeyPassion:
		a.Passion = value
	default:
		return fmt.Errorf("unknown answer key %q", key)
	}
	return nil
}

// Get returns the value recorded under the given answer key.
func (a Answers) Get(key string) (string, error) {
	switch key {
	case KeyActivity:
		return a.Activity, nil
	case KeySubject:
		return a.Subject, nil
	case KeyWorkStyle:
		return a.WorkStyle, nil
	case KeyPassion:
		return a.Passion, nil
	default:
		return "", fmt.Errorf("unknown answer key %q", key)
	}
}

// Complete reports whether every answer key has a value.
func (a Answers) Complete() bool {
	return a.Activity != "" && a.Subject != "" && a.WorkStyle != "" && a.Passion != ""
}

// Keys returns all answer keys in catalog order.
func Keys() []string {
	return []string{KeyActivity, KeySubject, KeyWorkStyle, KeyPassion}
}

// Questions returns the fixed question catalog in presentation order.
func Questions() []Question {
	return questions
}

var questions = []Question{
	{
		ID:     "q1",
		Prompt: "ในวันหยุด คุณชอบทำกิจกรรมแบบไหนมากที่สุด?",
		Type:   TypeImageChoice,
		Key:    KeyActivity,
		Options: []Option{
			{Value: "สร้างสรรค์", Label: "วาดรูป/ประดิษฐ์", Image: "https://picsum.photos/seed/art/400/300"},
			{Value: "สำรวจธรรมชาติ", Label: "เดินป่า/ดูดาว", Image: "https://picsum.photos/seed/nature/400/300"},
			{Value: "เทคโนโลยี", Label: "เขียนโค้ด/เล่นเกม", Image: "https://picsum.photos/seed/tech/400/300"},
			{Value: "ช่วยเหลือผู้อื่น", Label: "ทำงานอาสาสมัคร", Image: "https://picsum.photos/seed/help/400/300"},
		},
	},
	{
		ID:     "q2",
		Prompt: "วิชาไหนในโรงเรียนที่คุณรู้สึกสนุกและท้าทายมากที่สุด?",
		Type:   TypeTextChoice,
		Key:    KeySubject,
		Options: []Option{
			{Value: "วิทยาศาสตร์และคณิตศาสตร์", Label: "วิทยาศาสตร์และคณิตศาสตร์"},
			{Value: "ศิลปะและดนตรี", Label: "ศิลปะและดนตรี"},
			{Value: "ภาษาและสังคมศาสตร์", Label: "ภาษาและสังคมศาสตร์"},
			{Value: "พละศึกษาและกิจกรรม", Label: "พละศึกษาและกิจกรรม"},
		},
	},
	{
		ID:     "q3",
		Prompt: "คุณชอบทำงานแบบไหนมากกว่ากัน?",
		Type:   TypeTextChoice,
		Key:    KeyWorkStyle,
		Options: []Option{
			{Value: "ทำงานคนเดียวอย่างมีสมาธิ", Label: "ทำงานคนเดียวอย่างมีสมาธิ"},
			{Value: "ทำงานเป็นทีมและแลกเปลี่ยนความคิดเห็น", Label: "ทำงานเป็นทีมและแลกเปลี่ยนความคิดเห็น"},
			{Value: "ผสมผสานกันระหว่างสองอย่าง", Label: "ผสมผสานกันระหว่างสองอย่าง"},
			{Value: "เป็นผู้นำและวางแผนให้ทีม", Label: "เป็นผู้นำและวางแผนให้ทีม"},
		},
	},
	{
		ID:     "q4",
		Prompt: "ถ้ามีพลังวิเศษหนึ่งอย่าง คุณอยากจะแก้ปัญหาอะไรในโลกนี้?",
		Type:   TypeFreeText,
		Key:    KeyPassion,
	},
}
