package scold

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		req     Request
		wantErr string
	}{
		{"Complete", Request{Character: CharacterFriend, Task: "t", Deadline: "d"}, ""},
		{"Missing_Character", Request{Task: "t", Deadline: "d"}, "character"},
		{"Missing_Task", Request{Character: CharacterFriend, Deadline: "d"}, "task"},
		{"Blank_Task", Request{Character: CharacterFriend, Task: "   ", Deadline: "d"}, "task"},
		{"Missing_Deadline", Request{Character: CharacterGrandma, Task: "t"}, "deadline"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIncompleteRequest)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestRequest_JSONFieldNames(t *testing.T) {
	body := `{"character":"principal","task":"청소","deadline":"오늘 밤","mood":"doomed","conditions":["d-day","below-target"]}`

	var req Request
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, Request{
		Character:  CharacterPrincipal,
		Task:       "청소",
		Deadline:   "오늘 밤",
		Mood:       MoodDoomed,
		Conditions: []string{ConditionDDay, ConditionBelowTarget},
	}, req)

	out, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, body, string(out))
}

func TestResponse_JSON(t *testing.T) {
	out, err := json.Marshal(Response{Message: "hi"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"hi"}`, string(out))

	out, err = json.Marshal(Response{Error: "nope"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"nope"}`, string(out))
}
