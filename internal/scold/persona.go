package scold

import "fmt"

const friendInstructions = `당신은 비꼬면서도 동기를 부여하는 독설가 친구입니다. 반말을 사용하고, 비꼬는 말투로 현실을 직격하면서도 은근히 동기부여가 되도록 합니다.
욕설은 **로 처리하되 강한 어감이 느껴지도록 합니다.
"그래, 네가 할 수 있을 줄 알았지~" 같은 빈정대는 말투로 사용자를 자극해주세요.`

const principalInstructions = `당신은 진지하고 엄격한 교장 선생님입니다. 존댓말을 사용하고, 실망감과 교훈이 담긴 훈화조로 말합니다.
품위를 유지하면서도 따끔한 충고를 해주세요.`

const grandmaInstructions = `당신은 구수하고 공격적인 욕쟁이 할머니입니다. 잔소리를 폭격처럼 쏟아냅니다.
"이 **끼야", "**할 놈아" 같은 강한 표현을 사용하고, 욕설은 **로 처리하되 매우 세고 구수한 어감이 느껴지도록 합니다.
진짜 화난 할머니처럼 거칠고 직설적으로 말하세요.`

// Persona is a fixed scolding personality: how it is shown to the user and
// the system prompt that makes the model speak as it.
type Persona struct {
	Character    Character `json:"character" yaml:"character"`
	Title        string    `json:"title" yaml:"title"`
	Description  string    `json:"description" yaml:"description"`
	Emoji        string    `json:"emoji" yaml:"emoji"`
	Instructions string    `json:"instructions" yaml:"instructions"`
}

// MoodOption pairs a mood with its form label.
type MoodOption struct {
	Mood  Mood   `json:"mood" yaml:"mood"`
	Label string `json:"label" yaml:"label"`
}

// ConditionOption pairs a condition code with its label.
type ConditionOption struct {
	Code  string `json:"code" yaml:"code"`
	Label string `json:"label" yaml:"label"`
}

var personas = []Persona{
	{
		Character:    CharacterFriend,
		Title:        "부랄친구",
		Description:  "친구처럼 직설적이고 현실적으로 혼내줍니다",
		Emoji:        "😤",
		Instructions: friendInstructions,
	},
	{
		Character:    CharacterPrincipal,
		Title:        "교장 쌤 훈화",
		Description:  "진지하고 실망스러운 톤으로 훈계합니다",
		Emoji:        "👔",
		Instructions: principalInstructions,
	},
	{
		Character:    CharacterGrandma,
		Title:        "욕쟁이 할머니",
		Description:  "구수하게 잔소리 폭격을 날립니다",
		Emoji:        "👵",
		Instructions: grandmaInstructions,
	},
}

// Personas returns the persona catalog in display order.
func Personas() []Persona {
	out := make([]Persona, len(personas))
	copy(out, personas)
	return out
}

// LookupPersona returns the persona for c.
func LookupPersona(c Character) (Persona, error) {
	switch c {
	case CharacterFriend:
		return personas[0], nil
	case CharacterPrincipal:
		return personas[1], nil
	case CharacterGrandma:
		return personas[2], nil
	default:
		return Persona{}, fmt.Errorf("%w: %q", ErrUnknownCharacter, string(c))
	}
}

// DescribeMood returns the phrase used for m inside the user prompt.
func DescribeMood(m Mood) (string, error) {
	switch m {
	case MoodOkay:
		return "괜찮다고 생각하지만", nil
	case MoodLazy:
		return "귀찮아서 미루고 있는", nil
	case MoodDoomed:
		return "망할 것 같은 상황인", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMood, string(m))
	}
}

// Moods returns the selectable moods in display order. The first entry is the form default.
func Moods() []MoodOption {
	return []MoodOption{
		{Mood: MoodOkay, Label: "😐 괜찮음"},
		{Mood: MoodLazy, Label: "😓 귀찮음"},
		{Mood: MoodDoomed, Label: "😱 망함 직전"},
	}
}

// ConditionLabel returns the human-readable label for code, or code itself when unknown.
func ConditionLabel(code string) string {
	switch code {
	case ConditionDDay:
		return "마감 D-1"
	case ConditionIncomplete:
		return "오늘 할 일 미완료"
	case ConditionBelowTarget:
		return "목표 시간 미달"
	default:
		return code
	}
}

// Conditions returns the known conditions in display order.
func Conditions() []ConditionOption {
	codes := []string{ConditionDDay, ConditionIncomplete, ConditionBelowTarget}
	out := make([]ConditionOption, 0, len(codes))
	for _, c := range codes {
		out = append(out, ConditionOption{Code: c, Label: ConditionLabel(c)})
	}
	return out
}
