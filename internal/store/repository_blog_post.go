package store

import (
	"context"

	"github.com/MKhiriev/go-saas-backend/internal/logger"
	"github.com/MKhiriev/go-saas-backend/models"
)

type blogPostRepository struct {
	logger *logger.Logger
	posts  Collection
}

func NewBlogPostRepository(gateway Gateway, logger *logger.Logger) BlogPostRepository {
	logger.Debug().Msg("creating blog post repository")
	return &blogPostRepository{
		posts:  gateway.Collection(models.CollectionBlogPosts),
		logger: logger,
	}
}

// ListPosts reads up to limit posts ordered by published_at descending.
// Drafts have no published_at and come last. The result is never nil.
func (r *blogPostRepository) ListPosts(ctx context.Context, limit int64) ([]models.BlogPost, error) {
	log := logger.FromContext(ctx)

	cur, err := r.posts.Find(ctx, Filter{}, FindOptions{
		Sort:  &SortKey{Field: "published_at", Direction: Descending, Kind: KindTime},
		Limit: limit,
	})
	if err != nil {
		log.Err(err).Str("func", "*blogPostRepository.ListPosts").Msg("error querying blog posts")
		return nil, err
	}
	defer cur.Close(ctx)

	posts := make([]models.BlogPost, 0)
	for cur.Next(ctx) {
		var post models.BlogPost
		if err = cur.Decode(&post); err != nil {
			log.Err(err).Str("func", "*blogPostRepository.ListPosts").Msg("error decoding blog post")
			return nil, err
		}
		post.ApplyDefaults()
		posts = append(posts, post)
	}
	if err = cur.Err(); err != nil {
		log.Err(err).Str("func", "*blogPostRepository.ListPosts").Msg("error iterating blog posts")
		return nil, err
	}

	return posts, nil
}
