package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/plazadecomidas/auth-service/internal/domain/entity"
	"github.com/plazadecomidas/auth-service/internal/domain/repository"
)

var _ repository.RoleRepository = (*CachedRoleRepo)(nil)

// CachedRoleRepo decora un RoleRepository con lectura a través de caché.
// Un fallo de la caché nunca falla la consulta: se degrada al repositorio
// interno y se deja constancia en el log.
type CachedRoleRepo struct {
	inner repository.RoleRepository
	cache Client
	ttl   time.Duration
	log   zerolog.Logger
}

// NewCachedRoleRepo construye el decorador. ttl <= 0 usa una hora.
func NewCachedRoleRepo(inner repository.RoleRepository, cache Client, ttl time.Duration, log zerolog.Logger) *CachedRoleRepo {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedRoleRepo{inner: inner, cache: cache, ttl: ttl, log: log}
}

// FindByName resuelve un rol por nombre, primero contra la caché.
func (r *CachedRoleRepo) FindByName(name string) (*entity.Role, error) {
	return r.lookup(fmt.Sprintf("role:name:%s", name), func() (*entity.Role, error) {
		return r.inner.FindByName(name)
	})
}

// FindByID resuelve un rol por ID, primero contra la caché.
func (r *CachedRoleRepo) FindByID(id int64) (*entity.Role, error) {
	return r.lookup(fmt.Sprintf("role:id:%d", id), func() (*entity.Role, error) {
		return r.inner.FindByID(id)
	})
}

func (r *CachedRoleRepo) lookup(key string, load func() (*entity.Role, error)) (*entity.Role, error) {
	ctx := context.Background()
	if raw, err := r.cache.Get(ctx, key); err == nil {
		var role entity.Role
		if err := json.Unmarshal([]byte(raw), &role); err == nil {
			return &role, nil
		}
		r.log.Warn().Str("key", key).Msg("entrada de caché corrupta, se ignora")
	} else if !errors.Is(err, ErrCacheMiss) {
		r.log.Warn().Err(err).Str("key", key).Msg("caché de roles no disponible")
	}

	role, err := load()
	if err != nil || role == nil {
		// la ausencia no se cachea: puede ser un catálogo aún sin sembrar
		return role, err
	}
	if raw, err := json.Marshal(role); err == nil {
		if err := r.cache.Set(ctx, key, string(raw), r.ttl); err != nil {
			r.log.Warn().Err(err).Str("key", key).Msg("no se pudo escribir la caché de roles")
		}
	}
	return role, nil
}
