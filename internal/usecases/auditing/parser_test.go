package auditing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/vx-block-audit/internal/domain"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{}},
		{name: "whitespace only", input: "  \n\t \r\n , ,\n", want: []string{}},
		{name: "newline separated", input: "a1\nb2\nc3", want: []string{"a1", "b2", "c3"}},
		{name: "comma separated", input: "a1,b2,c3", want: []string{"a1", "b2", "c3"}},
		{name: "mixed separators", input: " a1 , b2\r\nc3,\n\n d4 ", want: []string{"a1", "b2", "c3", "d4"}},
		{name: "windows line endings", input: "king.com\r\ndreamgames.com\r\n", want: []string{"king.com", "dreamgames.com"}},
		{name: "repeated tokens are kept", input: "a\na,b", want: []string{"a", "a", "b"}},
		{name: "inner spaces preserved", input: "Dream Games, King", want: []string{"Dream Games", "King"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseList(tt.input)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseList_SeparatorStyleDoesNotMatter(t *testing.T) {
	ids := []string{
		"632cc7810ca02c6344d51822",
		"632cc70d35cc2d93ebf3b2d5",
		"5b2abc08c4867b46785c2206",
	}

	byNewline := ParseList(ids[0] + "\n" + ids[1] + "\n" + ids[2])
	byComma := ParseList(ids[0] + ", " + ids[1] + ", " + ids[2])
	mixed := ParseList(ids[0] + ",\n" + ids[1] + "\r\n  " + ids[2] + ",")

	assert.Equal(t, ids, byNewline)
	assert.Equal(t, byNewline, byComma)
	assert.Equal(t, byNewline, mixed)
}

func TestCleanList(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "nil", input: nil, want: []string{}},
		{name: "trims and drops blanks", input: []string{" a1 ", "", "  ", "a2"}, want: []string{"a1", "a2"}},
		{name: "commas inside an entry are kept", input: []string{" Acme, Inc. ", "king.com"}, want: []string{"Acme, Inc.", "king.com"}},
		{name: "repeated entries are kept", input: []string{"a1", "a1"}, want: []string{"a1", "a1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanList(tt.input))
		})
	}
}

func TestBuildRequest(t *testing.T) {
	request := BuildRequest(&domain.AuditForm{
		AppIDs:           "app-1\napp-2",
		Exclusions:       "",
		RecipientEmail:   "  ops@example.com ",
		SenderEmail:      "   ",
		GmailAppPassword: " keep spaces ",
	})

	assert.Equal(t, []string{"app-1", "app-2"}, request.TargetAppIDs)
	assert.Equal(t, []string{}, request.ExcludedBlockValues)
	assert.Equal(t, "ops@example.com", request.RecipientEmail)
	assert.Equal(t, "", request.SenderEmail)
	assert.Equal(t, " keep spaces ", request.GmailAppPassword)
}

func TestBuildRequest_BlankEmailIsRejected(t *testing.T) {
	request := BuildRequest(&domain.AuditForm{
		AppIDs:           "app-1",
		RecipientEmail:   "   ",
		SenderEmail:      "sender@gmail.com",
		GmailAppPassword: "pw",
	})

	assert.Equal(t, "", request.RecipientEmail)
	assert.ErrorIs(t, Validate(request), ErrMissingRecipient)
}
