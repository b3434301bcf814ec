package contract

import (
	"time"

	"flowa-be/internal/entity"
)

// PendingRegistrationRepository holds e-mail verification codes until they
// are consumed or expire.
type PendingRegistrationRepository interface {
	Save(reg *entity.PendingRegistration, ttl time.Duration)
	// Consume returns the registration and removes it. The second value is
	// false when no registration exists for the email.
	Consume(email string) (*entity.PendingRegistration, bool)
	Get(email string) (*entity.PendingRegistration, bool)
}
