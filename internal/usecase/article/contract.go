package article

import (
	"context"

	domart "github.com/kailas-cloud/articledex/internal/domain/article"
	"github.com/kailas-cloud/articledex/internal/domain/language"
)

// Repository defines the storage contract for article operations.
type Repository interface {
	Create(ctx context.Context, p language.Profile, a *domart.Article) (domart.Article, error)
	Update(ctx context.Context, p language.Profile, a *domart.Article) error
	Get(ctx context.Context, p language.Profile, id int) (domart.Article, error)
	GetAll(ctx context.Context, p language.Profile) ([]domart.Article, error)
	Delete(ctx context.Context, p language.Profile, id int) error
}
