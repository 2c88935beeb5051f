package utils

import (
	"fmt"
	"log"

	"learnhub/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends transactional email through SendGrid.
type Mailer struct {
	client *sendgrid.Client
	from   *mail.Email
}

func NewMailer(apiKey, sender string) *Mailer {
	return &Mailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail("LearnHub", sender),
	}
}

// ExamPassedEmail builds the congratulation message for a passed attempt.
func ExamPassedEmail(from *mail.Email, user models.User, exam models.Exam, result models.ExamResult) *mail.SGMailV3 {
	subject := fmt.Sprintf("You passed the %s exam", exam.CourseName)
	plain := fmt.Sprintf("Dear %s,\n\nCongratulations! You scored %d%% on the %s exam (passing score %d%%).\n\nLearnHub Team",
		user.Name, result.Score, exam.CourseName, exam.PassingScore)
	html := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Exam Passed!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Congratulations! You passed the exam for:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666; text-align: center;">Your score: <strong>%d%%</strong> (passing score %d%%)</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">LearnHub Team</p>
				</div>
			</body>
		</html>
	`, user.Name, exam.CourseName, result.Score, exam.PassingScore)

	return mail.NewSingleEmail(from, subject, mail.NewEmail(user.Name, user.Email), plain, html)
}

// OnExamComplete emails users who passed. Sending happens in the background.
func (m *Mailer) OnExamComplete(user models.User, exam models.Exam, result models.ExamResult) {
	if !result.Passed || user.Email == "" {
		return
	}
	message := ExamPassedEmail(m.from, user, exam, result)
	go func() {
		resp, err := m.client.Send(message)
		if err != nil {
			log.Printf("[EMAIL] Error sending exam email to %s: %v", user.Email, err)
			return
		}
		if resp.StatusCode >= 300 {
			log.Printf("[EMAIL] SendGrid rejected exam email to %s: %d %s", user.Email, resp.StatusCode, resp.Body)
			return
		}
		log.Printf("[EMAIL] Exam email sent to %s", user.Email)
	}()
}
