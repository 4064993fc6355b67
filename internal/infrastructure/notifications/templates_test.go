package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOTPEmailsEmbedCode(t *testing.T) {
	builders := map[string]func(string) (string, string){
		"register":               registerOTPEmail,
		"register resend":        registerResendOTPEmail,
		"activate":               activateAccountOTPEmail,
		"activate resend":        activateAccountResendOTPEmail,
		"forgot password":        forgotPasswordOTPEmail,
		"forgot password resend": forgotPasswordResendOTPEmail,
	}

	for name, build := range builders {
		subject, body := build("987654")
		assert.NotEmpty(t, subject, name)
		assert.Contains(t, body, "987654", name)
	}
}

func TestNameEmailsEmbedName(t *testing.T) {
	subject, body := welcomeEmail("Asha")
	assert.Equal(t, subjectWelcome, subject)
	assert.Contains(t, body, "Asha")

	subject, body = passwordResetSuccessEmail("Asha")
	assert.Equal(t, subjectPasswordResetSuccess, subject)
	assert.Contains(t, body, "Asha")
}
