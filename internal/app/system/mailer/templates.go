// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// MentorRequestEmailData holds data for the mentor-request notification.
type MentorRequestEmailData struct {
	SiteName     string
	MentorName   string
	ProjectTitle string
	LeaderName   string
	ProjectLink  string
}

// BuildMentorRequestEmail creates the notification a mentor receives
// when a team requests them, with both HTML and text bodies.
func BuildMentorRequestEmail(data MentorRequestEmailData) Email {
	return Email{
		To:       "", // Set by caller
		Subject:  fmt.Sprintf("Mentorship request: %s", data.ProjectTitle),
		TextBody: buildMentorRequestText(data),
		HTMLBody: buildMentorRequestHTML(data),
	}
}

func buildMentorRequestText(data MentorRequestEmailData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Hi %s,\n\n", data.MentorName))
	buf.WriteString(fmt.Sprintf("%s has requested you as the mentor for the project %q.\n\n", data.LeaderName, data.ProjectTitle))
	buf.WriteString("Review the project and accept or reject the request here:\n")
	buf.WriteString(data.ProjectLink + "\n\n")
	buf.WriteString(fmt.Sprintf("— %s\n", data.SiteName))
	return buf.String()
}

func buildMentorRequestHTML(data MentorRequestEmailData) string {
	tmpl := template.Must(template.New("mentorrequest").Parse(mentorRequestHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const mentorRequestHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Mentorship Request</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #4f46e5;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 16px; font-size: 16px; color: #111827;">Hi {{.MentorName}},</p>
              <p style="margin: 0 0 16px; font-size: 15px; color: #374151;">
                <strong>{{.LeaderName}}</strong> has requested you as the mentor for the project
                <strong>{{.ProjectTitle}}</strong>.
              </p>
              <p style="margin: 0 0 24px; font-size: 15px; color: #374151;">Review the project and accept or reject the request:</p>
              <table role="presentation" cellspacing="0" cellpadding="0" align="center">
                <tr>
                  <td style="border-radius: 6px; background-color: #4f46e5;">
                    <a href="{{.ProjectLink}}" style="display: inline-block; padding: 12px 24px; font-size: 15px; font-weight: 600; color: #ffffff; text-decoration: none;">View project</a>
                  </td>
                </tr>
              </table>
            </td>
          </tr>
          <tr>
            <td style="padding: 0 32px 32px; text-align: center;">
              <p style="margin: 0; font-size: 12px; color: #9ca3af;">You received this email because a team on {{.SiteName}} named you in a mentorship request.</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
