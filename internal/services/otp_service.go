package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/AbidMulla/off-compus-backend/domain"
)

// OTPServiceImpl issues 6-digit one-time codes
type OTPServiceImpl struct {
	ttl time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(ttl time.Duration) domain.OTPService {
	return &OTPServiceImpl{ttl: ttl}
}

// Issue generates a random code in [100000, 999999] with an absolute
// expiry ttl from now.
func (s *OTPServiceImpl) Issue() (domain.OTP, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return domain.OTP{}, fmt.Errorf("failed to generate OTP: %w", err)
	}
	return domain.OTP{
		Code:      fmt.Sprintf("%06d", n.Int64()+100000),
		ExpiresAt: time.Now().Add(s.ttl),
	}, nil
}
