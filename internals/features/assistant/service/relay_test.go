package service

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStream_ForwardsSystemPromptAndMessages(t *testing.T) {
	var got map[string]interface{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer cle-test", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, "data: {\"choices\":[{\"delta\":{\"content\":\"Bonjour\"}}]}\n\ndata: [DONE]\n")
	}))
	defer upstream.Close()

	body, status, err := OpenStream(upstream.URL, "cle-test", "gpt-4o-mini", "prompt système", []ChatMessage{
		{Role: "user", Content: "Bonjour"},
	})
	require.NoError(t, err)
	defer body.Close()
	assert.Equal(t, http.StatusOK, status)

	assert.Equal(t, true, got["stream"])
	msgs := got["messages"].([]interface{})
	require.Len(t, msgs, 2)
	first := msgs[0].(map[string]interface{})
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "prompt système", first["content"])
}

func TestOpenStream_NonOKStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	body, status, err := OpenStream(upstream.URL, "k", "m", "p", nil)
	assert.Nil(t, body)
	assert.Error(t, err)
	assert.Equal(t, http.StatusTooManyRequests, status)
}

func TestCopyStream_VerbatimUntilDone(t *testing.T) {
	in := strings.NewReader(
		"data: {\"choices\":[{\"delta\":{\"content\":\"Bon\"}}]}\n" +
			"data: {\"choices\":[{\"delta\":{\"content\":\"jour\"}}]}\n" +
			"ligne malformée sans préfixe\n" +
			"data: [DONE]\n" +
			"data: jamais relayé\n")

	var out bytes.Buffer
	require.NoError(t, CopyStream(in, &out))

	s := out.String()
	assert.Contains(t, s, `"content":"Bon"`)
	assert.Contains(t, s, "ligne malformée sans préfixe")
	assert.True(t, strings.HasSuffix(s, "data: [DONE]\n"))
	assert.NotContains(t, s, "jamais relayé")
}

func TestMapUpstreamError(t *testing.T) {
	code, body := MapUpstreamError(http.StatusTooManyRequests)
	assert.Equal(t, fiber.StatusTooManyRequests, code)
	assert.Contains(t, body["error"], "saturé")

	code, body = MapUpstreamError(http.StatusPaymentRequired)
	assert.Equal(t, fiber.StatusPaymentRequired, code)
	assert.Contains(t, body["error"], "épuisés")

	code, _ = MapUpstreamError(http.StatusBadGateway)
	assert.Equal(t, fiber.StatusInternalServerError, code)
}

func TestSystemPromptFor(t *testing.T) {
	assert.Contains(t, SystemPromptFor(TypeChat, ""), "AssoJereb")
	assert.Contains(t, SystemPromptFor(TypeNewsStructure, ""), "titre")
	assert.Contains(t, SystemPromptFor(TypeSummarize, ""), "résumes")
	assert.Contains(t, SystemPromptFor(TypeImage, ""), "générateur d'images")
	assert.NotEqual(t, SystemPromptFor(TypeChat, ""), SystemPromptFor(TypeImage, ""))
	assert.Contains(t, SystemPromptFor("type-inconnu", ""), "AssoJereb")

	withCtx := SystemPromptFor(TypeChatWithContext, "- 12 membres")
	assert.Contains(t, withCtx, "Contexte actuel")
	assert.Contains(t, withCtx, "- 12 membres")

	// Contexte vide : pas de section contexte
	assert.NotContains(t, SystemPromptFor(TypeChatWithContext, ""), "Contexte actuel")
}
