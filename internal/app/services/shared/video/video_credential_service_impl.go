package video

import (
	"time"

	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

type videoCredentialService struct {
	ApiKey    string
	ApiSecret string
	TTL       time.Duration
}

func NewVideoCredentialService(internalConfig *config.InternalConfig) contracts.VideoCredentialService {
	return &videoCredentialService{
		ApiKey:    internalConfig.Video.ApiKey,
		ApiSecret: internalConfig.Video.ApiSecret,
		TTL:       time.Duration(internalConfig.Video.CredentialTTLInHours) * time.Hour,
	}
}

func (s *videoCredentialService) RoomIDForSlot(slotID string) string {
	return constvars.AppointmentVideoRoomPrefix + slotID
}

func (s *videoCredentialService) MintCredential(roomID, uid, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"apikey":   s.ApiKey,
		"room":     roomID,
		"uid":      uid,
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.TTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.ApiSecret))
	if err != nil {
		return "", exceptions.ErrVideoCredentialMint(err)
	}
	return signed, nil
}
