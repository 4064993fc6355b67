package notifications

import "fmt"

// Email subjects, kept in one place so tests can assert on them.
const (
	subjectRegisterOTP          = "✅ Verify Your Email to Get Started ✨"
	subjectRegisterResendOTP    = "🔄 Your New Verification Code"
	subjectActivateOTP          = "✅ Activate Your Account"
	subjectActivateResendOTP    = "🔄 Your New Activation Code"
	subjectForgotPasswordOTP    = "🔐 Reset Your Password"
	subjectForgotPasswordResend = "🔄 Your New Password Reset Code"
	subjectWelcome              = "🎉 Welcome to FresherJobCampus!"
	subjectPasswordResetSuccess = "✅ Your Password Has Been Reset"
)

// wrap renders the shared email shell around a content block.
func wrap(headerTitle, content string) string {
	return fmt.Sprintf(`<!doctype html>
<html lang="en-US">
<head>
<meta content="text/html; charset=utf-8" http-equiv="Content-Type" />
<title>%s</title>
<style type="text/css">
  body { font-family: 'Open Sans', sans-serif; background-color: #f2f3f8; margin: 0; }
  .email-wrapper { max-width: 670px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; overflow: hidden; }
  .email-header { background-color: #0c5394; padding: 20px; text-align: center; color: #ffffff; }
  .email-content { padding: 40px 30px; color: #455056; font-size: 15px; line-height: 1.6; }
  .otp-code { font-size: 20px; color: #0c5394; font-weight: bold; text-align: center; margin: 20px 0; }
  .email-footer { background-color: #f7f7f7; padding: 20px; text-align: center; color: #999; font-size: 14px; }
</style>
</head>
<body>
<div class="email-wrapper">
  <div class="email-header"><h1>%s</h1></div>
  <div class="email-content">%s</div>
  <div class="email-footer"></div>
</div>
</body>
</html>`, headerTitle, headerTitle, content)
}

func otpBody(headerTitle, intro, code string) string {
	content := fmt.Sprintf(`<h2>Hello,</h2>
<p>%s Kindly note that this OTP is valid for only 5 minutes.</p>
<div class="otp-code"><p>OTP: %s</p></div>
<p>If you did not request this code, please ignore this email or contact support.</p>`, intro, code)
	return wrap(headerTitle, content)
}

func registerOTPEmail(code string) (string, string) {
	return subjectRegisterOTP, otpBody("Account Activation",
		"To activate your account, please use the One-Time Password (OTP) provided below.", code)
}

func registerResendOTPEmail(code string) (string, string) {
	return subjectRegisterResendOTP, otpBody("Account Activation",
		"Here is your new One-Time Password (OTP) to activate your account.", code)
}

func activateAccountOTPEmail(code string) (string, string) {
	return subjectActivateOTP, otpBody("Account Activation",
		"To activate your account, please use the One-Time Password (OTP) provided below.", code)
}

func activateAccountResendOTPEmail(code string) (string, string) {
	return subjectActivateResendOTP, otpBody("Account Activation",
		"Here is your new One-Time Password (OTP) to activate your account.", code)
}

func forgotPasswordOTPEmail(code string) (string, string) {
	return subjectForgotPasswordOTP, otpBody("Password Reset",
		"To reset your password, please use the One-Time Password (OTP) provided below.", code)
}

func forgotPasswordResendOTPEmail(code string) (string, string) {
	return subjectForgotPasswordResend, otpBody("Password Reset",
		"Here is your new One-Time Password (OTP) to reset your password.", code)
}

func welcomeEmail(name string) (string, string) {
	content := fmt.Sprintf(`<h2>Welcome, %s!</h2>
<p>Your email has been verified and your account is now active. Explore the latest job postings, save the ones you like, and apply in one click.</p>`, name)
	return subjectWelcome, wrap("Welcome to FresherJobCampus", content)
}

func passwordResetSuccessEmail(name string) (string, string) {
	content := fmt.Sprintf(`<h2>Hello, %s</h2>
<p>Your password has been reset successfully. If you did not perform this change, please contact support immediately.</p>`, name)
	return subjectPasswordResetSuccess, wrap("Password Reset Successful", content)
}
