package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tabicon/internal/application/port"
	"github.com/bnema/tabicon/internal/domain/repository"
	"github.com/bnema/tabicon/internal/logging"
)

// PurgeFaviconsUseCase removes kept favicons from the index and the icon store.
type PurgeFaviconsUseCase struct {
	index   repository.FaviconIndexRepository
	evictor port.FaviconEvictor
}

// NewPurgeFaviconsUseCase creates a new PurgeFaviconsUseCase. evictor may be nil.
func NewPurgeFaviconsUseCase(index repository.FaviconIndexRepository, evictor port.FaviconEvictor) *PurgeFaviconsUseCase {
	return &PurgeFaviconsUseCase{index: index, evictor: evictor}
}

// PurgeFaviconsInput selects the domains to purge. Empty means every indexed domain.
type PurgeFaviconsInput struct {
	Domains []string
}

// PurgeFaviconResult is the outcome for one domain.
type PurgeFaviconResult struct {
	Domain  string
	Success bool
	Error   error
}

// PurgeFaviconsOutput contains the results of the purge operation.
type PurgeFaviconsOutput struct {
	Results      []PurgeFaviconResult
	SuccessCount int
	FailureCount int
}

// Execute purges the selected domains.
// Continues on errors, collecting all results.
func (uc *PurgeFaviconsUseCase) Execute(ctx context.Context, input PurgeFaviconsInput) (*PurgeFaviconsOutput, error) {
	log := logging.FromContext(ctx)

	domains := input.Domains
	if len(domains) == 0 {
		entries, err := uc.index.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list favicon index: %w", err)
		}
		for _, e := range entries {
			domains = append(domains, e.Domain)
		}
	}

	out := &PurgeFaviconsOutput{}
	for _, domain := range domains {
		res := PurgeFaviconResult{Domain: domain}

		err := uc.index.Delete(ctx, domain)
		if err == nil && uc.evictor != nil {
			err = uc.evictor.Evict(ctx, domain)
		}

		if err != nil {
			res.Error = err
			out.FailureCount++
			log.Warn().Err(err).Str("domain", domain).Msg("purge favicon failed")
		} else {
			res.Success = true
			out.SuccessCount++
			log.Debug().Str("domain", domain).Msg("favicon purged")
		}
		out.Results = append(out.Results, res)
	}

	if out.FailureCount > 0 {
		return out, fmt.Errorf("failed to purge %d favicons", out.FailureCount)
	}
	return out, nil
}
