package ses

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"claimguard/internal/analyzer"
	"claimguard/internal/domain"
	"claimguard/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendReportEmail(ctx context.Context, toEmail, toName string, result *domain.AnalysisResult) error {
	subject := fmt.Sprintf("Your policy report card: %d of %d scenarios covered",
		result.VulnerabilityScore, result.TotalScenarios)
	textBody := buildReportText(toName, result)
	htmlBody := buildReportHTML(toName, result)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildReportText(toName string, result *domain.AnalysisResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", toName)
	fmt.Fprintf(&b, "Your policy covers %d of %d tested scenarios.\n\n", result.VulnerabilityScore, result.TotalScenarios)

	b.WriteString("Coverage gaps:\n")
	for _, sc := range result.Scenarios {
		if sc.Status == domain.StatusCovered {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s (%s)\n", sc.Name, sc.Status, sc.Reason)
	}

	b.WriteString("\nRecommendations:\n")
	for _, rec := range result.Recommendations {
		fmt.Fprintf(&b, "- %s (%s): %s\n", rec.Title, rec.Cost, rec.Benefit)
	}
	fmt.Fprintf(&b, "Total annual cost: %s\n", analyzer.TotalAnnualCost(result.Recommendations))

	b.WriteString("\nClaimGuard Team")
	return b.String()
}

func buildReportHTML(toName string, result *domain.AnalysisResult) string {
	var b strings.Builder
	b.WriteString("<html><body style=\"font-family: Arial, sans-serif; color: #333;\">")
	fmt.Fprintf(&b, "<h2>Hi %s,</h2>", toName)
	fmt.Fprintf(&b, "<p>Your policy covers <strong>%d of %d</strong> tested scenarios.</p>",
		result.VulnerabilityScore, result.TotalScenarios)

	b.WriteString("<h3>Coverage gaps</h3><ul>")
	for _, sc := range result.Scenarios {
		if sc.Status == domain.StatusCovered {
			continue
		}
		fmt.Fprintf(&b, "<li><strong>%s</strong>: %s &mdash; %s</li>", sc.Name, sc.Status, sc.Reason)
	}
	b.WriteString("</ul>")

	b.WriteString("<h3>Recommendations</h3><ul>")
	for _, rec := range result.Recommendations {
		fmt.Fprintf(&b, "<li><strong>%s</strong> (%s): %s</li>", rec.Title, rec.Cost, rec.Benefit)
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p>Total annual cost: <strong>%s</strong></p>", analyzer.TotalAnnualCost(result.Recommendations))

	b.WriteString("<p>ClaimGuard Team</p></body></html>")
	return b.String()
}
