package handlers

import (
	"sync"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("pubkey", validatePublicKey)
		}
	})
}

// validatePublicKey accepts base58 strings that decode to a 32-byte key.
func validatePublicKey(fl validator.FieldLevel) bool {
	_, err := domain.ParsePublicKey(fl.Field().String())
	return err == nil
}
