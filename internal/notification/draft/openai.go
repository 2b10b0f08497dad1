package draft

import (
	"context"
	"strings"

	"github.com/networkasro-maker/asro/internal/config"
	"github.com/networkasro-maker/asro/internal/notification/domain"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// systemInstruction keeps the drafter inside the template contract: reply
// with the outbound message text only, placeholders allowed.
const systemInstruction = "Anda adalah asisten AI untuk ASRO.NET, penyedia layanan internet lokal. " +
	"Tugas Anda adalah membantu admin membuat draf pesan WhatsApp yang ramah, jelas, dan profesional untuk pelanggan. " +
	"Anda dapat menggunakan placeholder berikut: {nama}, {tagihan}, {jatuh_tempo}. " +
	"Balas HANYA dengan teks pesan yang akan dikirim, tanpa tambahan kata pengantar atau penutup."

type openAIDrafter struct {
	client openai.Client
}

// NewDrafter builds the generative-text collaborator. Returns nil when no
// API key is configured; the notification service treats a nil drafter as
// unavailable.
func NewDrafter(cfg config.Config) domain.Drafter {
	key := strings.TrimSpace(cfg.OpenAIAPIKey)
	if key == "" {
		return nil
	}
	return &openAIDrafter{
		client: openai.NewClient(option.WithAPIKey(key)),
	}
}

func (d *openAIDrafter) Draft(ctx context.Context, instruction string) (string, error) {
	resp, err := d.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4oMini,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstruction),
			openai.UserMessage(instruction),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", domain.ErrDrafterUnavailable
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
