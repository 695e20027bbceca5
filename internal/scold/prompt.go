package scold

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// conditionClausePrefix introduces the optional list of aggravating conditions.
const conditionClausePrefix = "추가로 다음 상황도 있습니다: "

// outputFormat is appended to every user prompt. It pins the answer to a
// headline sentence followed by four arrow lines, with a worked example.
const outputFormat = `위 상황에 대해 반드시 다음 형식으로만 답변해주세요 (정확히 5줄):

[혼내는 핵심 한 문장]
→ [현재 상황 팩트와 문제점 지적]
→ [더 심각한 결과 경고]
→ [지금 당장 해야 할 구체적 행동]
→ [마지막 한 마디로 강하게 마무리]

예시:
지금 이러고 있을 상황이 아님
→ 마감까지 6시간 남았는데 아직 시작도 안 했잖아
→ 이대로 가면 밤새 고생하거나 아예 망하는 수밖에 없어
→ 지금 당장 자료 조사 10분만이라도 시작해
→ 시작이 반이라고, 미루면 미룰수록 더 **되는 거 알지?
`

// Compose builds the system and user prompts for req.
// The system prompt is the persona's instructions verbatim. Unknown
// characters and moods are rejected instead of leaking into the prompt.
func Compose(req Request) (systemPrompt, userPrompt string, err error) {
	persona, err := LookupPersona(req.Character)
	if err != nil {
		return "", "", err
	}
	moodText, err := DescribeMood(req.Mood)
	if err != nil {
		return "", "", err
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("사용자가 미루고 있는 일: ")
	b.WriteString(req.Task)
	b.WriteString("\n")
	b.WriteString("마감일: ")
	b.WriteString(req.Deadline)
	b.WriteString("\n")
	b.WriteString("현재 상태: ")
	b.WriteString(moodText)
	b.WriteString("\n")
	b.WriteString(conditionClause(req.Conditions))
	b.WriteString("\n\n")
	b.WriteString(outputFormat)

	log.Debug().
		Str("character", string(req.Character)).
		Str("mood", string(req.Mood)).
		Strs("conditions", req.Conditions).
		Msg("Composed scolding prompts")

	return persona.Instructions, b.String(), nil
}

// conditionClause returns the extra-conditions sentence, or "" when there are none.
// Labels keep the caller's order; repeated codes are listed once.
func conditionClause(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	seen := make(map[string]bool, len(conditions))
	labels := make([]string, 0, len(conditions))
	for _, c := range conditions {
		if seen[c] {
			continue
		}
		seen[c] = true
		labels = append(labels, ConditionLabel(c))
	}
	return conditionClausePrefix + strings.Join(labels, ", ")
}
