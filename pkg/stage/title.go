package stage

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// titleMaxWidth caps generated titles at 25 display columns. Hangul and CJK
// glyphs occupy two columns, so the cap is width-based, not rune-based.
const titleMaxWidth = 50

// GenerateTitle summarizes the proposal into a short Korean title. Never
// fails: on any LLM or parse error the first non-empty proposal line is
// used, and as a last resort the fallback.
func GenerateTitle(ctx context.Context, client LLMClient, content, fallback string) string {
	prompt := fmt.Sprintf(`당신은 제안서 제목을 만드는 전문가입니다. 아래 제안서 내용을 보고 핵심을 표현하는 25자 이하의 한국어 제목을 작성하세요.
제목은 특수문자 없이 간결하게 작성하고, JSON 형식으로만 응답하세요.

제안서:
%s

응답 형식:
{"title": "여기에 제목"}`, truncateForPrompt(content, 600))

	if response, err := client.Complete(ctx, prompt, Input{}.llmOptions()); err == nil {
		var parsed struct {
			Title string `json:"title"`
		}
		if err := decodeJSONObject(response, &parsed); err == nil {
			if title := strings.TrimSpace(parsed.Title); title != "" {
				return clampTitle(title)
			}
		}
	}

	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return clampTitle(line)
		}
	}
	return clampTitle(fallback)
}

func clampTitle(title string) string {
	if runewidth.StringWidth(title) <= titleMaxWidth {
		return title
	}
	return runewidth.Truncate(title, titleMaxWidth, "…")
}
