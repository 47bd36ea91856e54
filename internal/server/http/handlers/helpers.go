package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/fintrack/internal/domain/model"
	"github.com/polkiloo/fintrack/internal/server/http/dto"
	"github.com/polkiloo/fintrack/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

const dateLayout = "2006-01-02"

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func toTransactionResponse(t model.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Type:      string(t.Type),
		Category:  t.Category,
		Amount:    t.Amount.InexactFloat64(),
		Note:      t.Note,
		Date:      t.Date.Format(dateLayout),
		CreatedAt: t.CreatedAt,
	}
}
