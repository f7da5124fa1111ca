package internal

import (
	"nullbyte/account-api/internal/service"
	"nullbyte/account-api/internal/store"
	"nullbyte/account-api/pkg/security"

	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// Deps bundles everything the handlers need, the signing secret
// included. Built once at startup and passed down explicitly instead
// of living in package globals.
type Deps struct {
	DB           *gorm.DB
	Store        *store.AccountStore
	Argon        *security.ArgonHash
	Mailer       service.Mailer
	Registration *service.Registration
	Verification *service.Verification
	JWTSecret    []byte
}

func NewDeps(db *gorm.DB) *Deps {
	s := store.NewAccountStore(db)
	argon := security.New()
	mailer := service.NewSMTPMailer()

	return &Deps{
		DB:           db,
		Store:        s,
		Argon:        argon,
		Mailer:       mailer,
		Registration: service.NewRegistration(s, argon, mailer),
		Verification: service.NewVerification(s),
		JWTSecret:    []byte(viper.GetString("jwt.secret")),
	}
}
