package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionTitle(t *testing.T) {
	first := func(text string) []Message {
		return []Message{
			{Role: MessageRoleUser, Text: text},
			{Role: MessageRoleModel, Text: "ignored for the title"},
		}
	}

	tests := []struct {
		name     string
		messages []Message
		want     string
	}{
		{"no messages", nil, ""},
		{"empty opening message", first(""), "..."},
		{"short text", first("hello core"), "hello core..."},
		{"exactly thirty runes", first(strings.Repeat("a", 30)), strings.Repeat("a", 30) + "..."},
		{"truncated past thirty runes", first(strings.Repeat("a", 31)), strings.Repeat("a", 30) + "..."},
		{"multibyte runes counted, not bytes", first(strings.Repeat("ф", 40)), strings.Repeat("ф", 30) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SessionTitle(tt.messages))
		})
	}
}
