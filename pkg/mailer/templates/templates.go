package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

const confirmationSubject = "Welcome! Please Confirm Your Email"

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<h1>Welcome to the Kudos Wall!</h1>
<p>Thank you for registering. Please click the link below to confirm your email address.</p>
<p><a href="{{.ConfirmURL}}">Confirm Email</a></p>
{{if .Recipient}}<p>This email was sent to {{.Recipient}}.</p>{{end}}`))

// Render produces subject, text and HTML bodies for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case "confirmation":
		var buf bytes.Buffer
		if err := confirmationTmpl.Execute(&buf, map[string]any{
			"ConfirmURL": str(data, "confirm_url"),
			"Recipient":  str(data, "recipient"),
		}); err != nil {
			return "", "", "", err
		}
		text = "Welcome to the Kudos Wall! Please confirm your email address."
		return confirmationSubject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}

func str(data map[string]any, key string) string {
	if data == nil {
		return ""
	}
	if v, ok := data[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}
