package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/skillsphere/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/skillsphere/internal/client/session"
	"github.com/dmitrijs2005/skillsphere/internal/common"
	"github.com/dmitrijs2005/skillsphere/internal/dbx"
)

// PreferenceService keeps the credential and the theme in the local
// metadata table.
type PreferenceService struct {
	db *sql.DB
}

var _ session.PreferenceStore = (*PreferenceService)(nil)

func NewPreferenceService(db *sql.DB) *PreferenceService {
	return &PreferenceService{db: db}
}

func (p *PreferenceService) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (p *PreferenceService) load(ctx context.Context, key string) (string, error) {
	v, err := p.repo(p.db).Get(ctx, key)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (p *PreferenceService) LoadToken(ctx context.Context) (string, error) {
	return p.load(ctx, common.TokenKey)
}

func (p *PreferenceService) SaveToken(ctx context.Context, token string) error {
	return p.repo(p.db).Set(ctx, common.TokenKey, []byte(token))
}

func (p *PreferenceService) ClearToken(ctx context.Context) error {
	return p.repo(p.db).Delete(ctx, common.TokenKey)
}

func (p *PreferenceService) LoadTheme(ctx context.Context) (string, error) {
	return p.load(ctx, common.ThemeKey)
}

func (p *PreferenceService) SaveTheme(ctx context.Context, theme string) error {
	return p.repo(p.db).Set(ctx, common.ThemeKey, []byte(theme))
}

// Reset forgets the stored credential and theme in one transaction.
func (p *PreferenceService) Reset(ctx context.Context) error {
	err := dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := p.repo(tx)
		if err := r.Delete(ctx, common.TokenKey); err != nil {
			return err
		}
		return r.Delete(ctx, common.ThemeKey)
	})
	if err != nil {
		return fmt.Errorf("reset preferences: %w", err)
	}
	return nil
}
