package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/tidwall/gjson"

	http "github.com/riposte-cli/riposte/internal/http"
)

const mediaTypeJSON = "application/json"

// Formatter is responsible for rendering HTTP responses for the terminal
type Formatter struct {
	scheme *ColorScheme
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}

	return &Formatter{scheme: scheme}
}

// FormatResponse renders resp in three sections: the status line, the
// headers, and the body, the first two each followed by a blank line.
// Bodies served as application/json are re-indented for readability; a
// body that is not valid JSON despite a JSON content type is an error.
func (f *Formatter) FormatResponse(resp *http.Response) (string, error) {
	var buf strings.Builder

	// Status line, e.g. "HTTP/1.1 200 OK"
	buf.WriteString(f.statusColor(resp).Sprintf("%s %s", resp.Proto, resp.Status))
	buf.WriteString("\n\n")

	// Headers, values exactly as received
	for _, name := range resp.HeaderNames() {
		for _, value := range resp.Headers.Values(name) {
			buf.WriteString(fmt.Sprintf("%s: %s\n", f.scheme.HeaderKey.Sprint(name), value))
		}
	}
	buf.WriteString("\n")

	body, err := f.formatBody(resp)
	if err != nil {
		return "", err
	}
	buf.WriteString(body)
	buf.WriteString("\n")

	return buf.String(), nil
}

// formatBody re-indents JSON bodies and leaves everything else untouched
func (f *Formatter) formatBody(resp *http.Response) (string, error) {
	mediaType, _, ok := resp.MediaType()
	if !ok || mediaType != mediaTypeJSON {
		return resp.BodyString(), nil
	}

	if !gjson.ValidBytes(resp.Body) {
		return "", fmt.Errorf("response declared %s but the body is not valid JSON", mediaTypeJSON)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, resp.Body, "", "  "); err != nil {
		return "", fmt.Errorf("formatting JSON body: %w", err)
	}

	return f.scheme.JSONBody.Sprint(pretty.String()), nil
}

func (f *Formatter) statusColor(resp *http.Response) *color.Color {
	switch {
	case resp.IsSuccess():
		return f.scheme.StatusOK
	case resp.IsRedirect():
		return f.scheme.StatusWarn
	default:
		return f.scheme.StatusError
	}
}
