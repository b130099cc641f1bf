package service

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

var relayClient = &http.Client{Timeout: 120 * time.Second}

// OpenStream ouvre la complétion en streaming auprès de la passerelle.
// L'appelant doit fermer le body retourné.
func OpenStream(gatewayURL, apiKey, model, systemPrompt string, messages []ChatMessage) (io.ReadCloser, int, error) {
	full := append([]ChatMessage{{Role: "system", Content: systemPrompt}}, messages...)

	payload, err := json.Marshal(map[string]interface{}{
		"model":    model,
		"messages": full,
		"stream":   true,
	})
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequest(http.MethodPost, gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := relayClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, resp.StatusCode, fmt.Errorf("passerelle IA: statut %d", resp.StatusCode)
	}
	return resp.Body, resp.StatusCode, nil
}

// CopyStream relaie le flux SSE de la passerelle ligne à ligne, tel quel,
// et s'arrête sur le sentinel [DONE] ou la fermeture du flux. Les lignes
// malformées sont transmises sans être interprétées.
func CopyStream(upstream io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(upstream)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
		if f, ok := w.(interface{ Flush() error }); ok {
			f.Flush()
		}
		if line == "data: [DONE]" {
			break
		}
	}
	return scanner.Err()
}

// MapUpstreamError projette un statut passerelle sur les trois catégories
// d'erreur exposées au client.
func MapUpstreamError(status int) (int, fiber.Map) {
	switch status {
	case http.StatusTooManyRequests:
		return fiber.StatusTooManyRequests, fiber.Map{
			"error": "Assistant saturé, réessayez dans un instant",
		}
	case http.StatusPaymentRequired:
		return fiber.StatusPaymentRequired, fiber.Map{
			"error": "Crédits de l'assistant épuisés",
		}
	default:
		return fiber.StatusInternalServerError, fiber.Map{
			"error": "Assistant momentanément indisponible",
		}
	}
}
