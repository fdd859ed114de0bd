package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/campaigndash-backend/internal/service"
)

func TestSuggestionsReturnThreeCannedMessages(t *testing.T) {
	svc := &service.MessageService{Delay: 0}

	suggestions := svc.Suggestions("Spring Sale", "repeat buyers")

	require.Len(t, suggestions, 3)
	for _, s := range suggestions {
		assert.Contains(t, s, "repeat buyers")
	}
}

func TestSuggestionsDefaultAudienceLabel(t *testing.T) {
	svc := &service.MessageService{Delay: 0}

	suggestions := svc.Suggestions("Spring Sale", "")

	require.Len(t, suggestions, 3)
	for _, s := range suggestions {
		assert.Contains(t, s, "loyal customers")
	}
}

func TestSuggestionsAreStable(t *testing.T) {
	svc := &service.MessageService{Delay: 0}

	first := svc.Suggestions("A", "vips")
	second := svc.Suggestions("B", "vips")

	assert.Equal(t, strings.Join(first, "|"), strings.Join(second, "|"),
		"the stub is deterministic, no model behind it")
}
