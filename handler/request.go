package api

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mercadolivro/bookstore-backend/apperror"
	bookpkg "github.com/mercadolivro/bookstore-backend/book"
	"github.com/mercadolivro/bookstore-backend/entity"
	"github.com/mercadolivro/bookstore-backend/middleware"
)

// RequestTimeout bounds the service calls of a single request.
var RequestTimeout = 10 * time.Second

const emailAvailableTag = "emailavailable"

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), RequestTimeout)
}

// EmailChecker backs the emailavailable validation tag.
type EmailChecker interface {
	EmailAvailable(ctx context.Context, email string) (bool, error)
}

// RegisterValidators installs the custom tags on gin's validator and makes
// field errors report json names.
func RegisterValidators(emails EmailChecker) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v.RegisterValidation(emailAvailableTag, func(fl validator.FieldLevel) bool {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()
		ok, err := emails.EmailAvailable(ctx, fl.Field().String())
		return err == nil && ok
	})
}

// callerID returns the customer id placed in context by RequireAuth.
func callerID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.GetString(middleware.CustomerIDKey))
	if err != nil {
		return uuid.Nil, apperror.Unauthorized()
	}
	return id, nil
}

func isAdmin(c *gin.Context) bool {
	return middleware.HasRole(c, string(entity.RoleAdmin))
}

// canActFor reports whether the caller may act on resources owned by owner.
func canActFor(c *gin.Context, owner uuid.UUID) bool {
	if isAdmin(c) {
		return true
	}
	id, err := callerID(c)
	return err == nil && id == owner
}

func pathID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.Validation(apperror.ML001).Wrap(err)
	}
	return id, nil
}

type pageQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

func (q pageQuery) page() bookpkg.Page {
	if q.Limit == 0 {
		q.Limit = 20
	}
	return bookpkg.Page{Limit: q.Limit, Offset: q.Offset}
}
