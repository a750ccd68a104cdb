package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"gin-manufacturer/models"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	recentProductsKey = "products:recent"
	// 破棄のたびに増える世代。読み込み開始時と世代が変わっていれば書き戻さない
	recentProductsGenKey = "products:recent:gen"
)

var errStaleProductCache = errors.New("product cache invalidated during read")

// CachedProductRepository 新着一覧（FindRecent）だけをRedisのハッシュにキャッシュする
// 書き込み系はすべてキャッシュを破棄してから返す。Redisの障害時はストアにフォールバックする
type CachedProductRepository struct {
	IProductRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedProductRepository(inner IProductRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) IProductRepository {
	return &CachedProductRepository{
		IProductRepository: inner,
		client:             client,
		ttl:                ttl,
		logger:             logger,
	}
}

func (r *CachedProductRepository) FindRecent(ctx context.Context, limit int) ([]models.Product, error) {
	field := strconv.Itoa(limit)
	cached, err := r.client.HGet(ctx, recentProductsKey, field).Bytes()
	if err == nil {
		var products []models.Product
		if err := json.Unmarshal(cached, &products); err == nil {
			return products, nil
		}
		r.logger.Warn("discarding undecodable product cache entry", zap.String("field", field))
	} else if err != redis.Nil {
		r.logger.Warn("product cache read failed", zap.Error(err))
	}

	gen, genErr := r.generation(ctx)
	products, err := r.IProductRepository.FindRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if genErr != nil {
		return products, nil
	}

	if data, err := json.Marshal(products); err == nil {
		switch err := r.writeBack(ctx, field, gen, data); {
		case err == nil:
		case errors.Is(err, errStaleProductCache), errors.Is(err, redis.TxFailedErr):
			r.logger.Debug("skipping stale product cache write", zap.String("field", field))
		default:
			r.logger.Warn("product cache write failed", zap.Error(err))
		}
	}
	return products, nil
}

func (r *CachedProductRepository) generation(ctx context.Context) (string, error) {
	gen, err := r.client.Get(ctx, recentProductsGenKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	return gen, err
}

// writeBack 世代がgenのままのときだけ書き込む
// 途中でinvalidateが走るとWATCHによりトランザクションが失敗する
func (r *CachedProductRepository) writeBack(ctx context.Context, field, gen string, data []byte) error {
	return r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, recentProductsGenKey).Result()
		if err != nil && err != redis.Nil {
			return err
		}
		if current != gen {
			return errStaleProductCache
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, recentProductsKey, field, data)
			pipe.Expire(ctx, recentProductsKey, r.ttl)
			return nil
		})
		return err
	}, recentProductsGenKey)
}

func (r *CachedProductRepository) Create(ctx context.Context, newProduct models.Product) (*models.InsertResult, error) {
	result, err := r.IProductRepository.Create(ctx, newProduct)
	r.invalidate(ctx)
	return result, err
}

func (r *CachedProductRepository) UpsertQuantity(ctx context.Context, productID string, quantity int) (*models.UpdateResult, error) {
	result, err := r.IProductRepository.UpsertQuantity(ctx, productID, quantity)
	r.invalidate(ctx)
	return result, err
}

func (r *CachedProductRepository) Delete(ctx context.Context, productID string) (*models.DeleteResult, error) {
	result, err := r.IProductRepository.Delete(ctx, productID)
	r.invalidate(ctx)
	return result, err
}

func (r *CachedProductRepository) invalidate(ctx context.Context) {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, recentProductsKey)
	pipe.Incr(ctx, recentProductsGenKey)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Warn("product cache invalidation failed", zap.Error(err))
	}
}
