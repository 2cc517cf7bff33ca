package service

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sreeharigs/organicproduct/internal/credential"
	"github.com/sreeharigs/organicproduct/internal/model"
)

// AuthService covers registration, login and password recovery for all
// three roles.
type AuthService struct {
	db       *gorm.DB
	mail     Mailer
	resetKey []byte
	resetTTL time.Duration
}

func NewAuthService(db *gorm.DB, mail Mailer, resetKey []byte, resetTTL time.Duration) *AuthService {
	return &AuthService{db: db, mail: mail, resetKey: resetKey, resetTTL: resetTTL}
}

// SendRegistrationOTP generates and emails an OTP for buyer registration.
// The caller compares the user's entry against the returned value before
// completing registration.
func (s *AuthService) SendRegistrationOTP(email string) (string, error) {
	otp, err := credential.GenerateOTP()
	if err != nil {
		return "", err
	}
	if err := s.mail.SendOTP(email, otp); err != nil {
		return "", err
	}
	return otp, nil
}

// RegisterBuyer creates a buyer account. The OTP gate happens before this
// call.
func (s *AuthService) RegisterBuyer(username, email, mobile, password string) (*model.Buyer, error) {
	var count int64
	if err := s.db.Model(&model.Buyer{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	hashed, err := credential.HashPassword(password)
	if err != nil {
		return nil, err
	}

	buyer := model.Buyer{
		Username: username,
		Email:    email,
		Mobile:   mobile,
		Password: hashed,
	}
	if err := s.db.Create(&buyer).Error; err != nil {
		zap.L().Error("Failed to create buyer", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	zap.L().Info("Buyer registered", zap.Uint("buyer_id", buyer.ID), zap.String("username", username))
	return &buyer, nil
}

// LoginBuyer authenticates a buyer by email and password.
func (s *AuthService) LoginBuyer(email, password string) (*model.Buyer, error) {
	var buyer model.Buyer
	if err := s.db.Where("email = ?", email).First(&buyer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !credential.CheckPassword(buyer.Password, password) {
		zap.L().Warn("Invalid buyer password", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("Buyer logged in", zap.Uint("buyer_id", buyer.ID))
	return &buyer, nil
}

// RegisterSeller creates a seller account gated by the approved certificate
// registry: the certificate must exist and must not already be claimed.
func (s *AuthService) RegisterSeller(username, password, jaivikCert string) (*model.Seller, error) {
	var count int64
	if err := s.db.Model(&model.ApprovedCertificate{}).
		Where("cert_number = ?", jaivikCert).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrCertificateNotFound
	}

	if err := s.db.Model(&model.Seller{}).
		Where("jaivik_cert = ?", jaivikCert).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCertificateTaken
	}

	if err := s.db.Model(&model.Seller{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	hashed, err := credential.HashPassword(password)
	if err != nil {
		return nil, err
	}

	seller := model.Seller{
		Username:   username,
		Password:   hashed,
		JaivikCert: jaivikCert,
	}
	if err := s.db.Create(&seller).Error; err != nil {
		zap.L().Error("Failed to create seller", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	zap.L().Info("Seller registered",
		zap.Uint("seller_id", seller.ID),
		zap.String("jaivik_cert", jaivikCert))
	return &seller, nil
}

// LoginSeller authenticates a seller by username and password.
func (s *AuthService) LoginSeller(username, password string) (*model.Seller, error) {
	var seller model.Seller
	if err := s.db.Where("username = ?", username).First(&seller).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !credential.CheckPassword(seller.Password, password) {
		zap.L().Warn("Invalid seller password", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("Seller logged in", zap.Uint("seller_id", seller.ID))
	return &seller, nil
}

// LoginAdmin authenticates an admin by username and password.
func (s *AuthService) LoginAdmin(username, password string) (*model.AdminUser, error) {
	var admin model.AdminUser
	if err := s.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !credential.CheckPassword(admin.Password, password) {
		zap.L().Warn("Invalid admin password", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("Admin logged in", zap.Uint("admin_id", admin.ID))
	return &admin, nil
}

// RequestBuyerReset issues a reset token for the buyer with the given
// email, persists it with its expiry and mails it. A mail failure aborts
// the flow; the stored token is harmless and gets overwritten on retry.
func (s *AuthService) RequestBuyerReset(email string) error {
	var buyer model.Buyer
	if err := s.db.Where("email = ?", email).First(&buyer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	token, expiry, err := credential.GenerateResetToken(s.resetKey, email, s.resetTTL)
	if err != nil {
		return err
	}

	if err := s.db.Model(&buyer).Updates(map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}).Error; err != nil {
		return err
	}

	if err := s.mail.SendResetToken(email, token); err != nil {
		return err
	}

	zap.L().Info("Reset token issued", zap.Uint("buyer_id", buyer.ID))
	return nil
}

// CompleteBuyerReset verifies the token against both the signed claims and
// the stored row, then replaces the password and clears the token.
func (s *AuthService) CompleteBuyerReset(email, token, newPassword string) error {
	subject, err := credential.VerifyResetToken(s.resetKey, token)
	if err != nil || subject != email {
		return ErrResetTokenInvalid
	}

	var buyer model.Buyer
	if err := s.db.
		Where("email = ? AND reset_token = ? AND reset_token_expiry > ?", email, token, time.Now()).
		First(&buyer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}

	hashed, err := credential.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.db.Model(&buyer).Updates(map[string]interface{}{
		"password":           hashed,
		"reset_token":        nil,
		"reset_token_expiry": nil,
	}).Error; err != nil {
		return err
	}

	zap.L().Info("Buyer password reset", zap.Uint("buyer_id", buyer.ID))
	return nil
}
