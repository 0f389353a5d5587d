package handlers

import (
	"net/http"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/SscSPs/journal_entry_store/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// programInfo describes the limits clients need before creating entries.
type programInfo struct {
	ProgramID       string `json:"programId"`
	EntrySpace      int    `json:"entrySpace"`
	EntryDeposit    int64  `json:"entryDepositLamports"`
	MaxTitleBytes   int    `json:"maxTitleBytes"`
	MaxMessageBytes int    `json:"maxMessageBytes"`
}

// registerHomeRoutes registers the program info route.
func registerHomeRoutes(group *gin.RouterGroup, cfg *config.Config) {
	rent := domain.Rent{
		LamportsPerByteYear: cfg.RentLamportsPerByte,
		ExemptionYears:      cfg.RentExemptionYears,
	}
	info := programInfo{
		ProgramID:       cfg.ProgramID,
		EntrySpace:      domain.JournalEntrySpace,
		EntryDeposit:    rent.MinimumBalance(domain.JournalEntrySpace),
		MaxTitleBytes:   domain.MaxTitleLength,
		MaxMessageBytes: domain.MaxMessageLength,
	}

	// getHome godoc
	// @Summary Show program parameters.
	// @Description Returns the program id, entry account size and the deposit each entry costs.
	// @Tags root
	// @Accept */*
	// @Produce json
	// @Success 200 {object} programInfo
	// @Router / [get]
	group.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, info)
	})
}
