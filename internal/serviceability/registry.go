// Package serviceability keeps the merchant store and the pincode index in
// lockstep: a merchant id is in the bucket of pincode p exactly when p is in
// that merchant's serviced set.
package serviceability

import (
	"context"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"serviceability/internal/domain/entity"
	domainerrors "serviceability/internal/domain/errors"
	"serviceability/internal/domain/lifecycle"
	"serviceability/internal/domain/repository"
	"serviceability/internal/errors"
)

// Options tunes a Registry.
type Options struct {
	// WriteTimeout bounds every persistence call. Zero selects lifecycle.DefaultTimeout.
	WriteTimeout time.Duration
}

// NewMerchant is the validated-on-create input of a merchant.
type NewMerchant struct {
	Profile  entity.MerchantProfile
	Pincodes []string
}

// CreateResult is the outcome of a successful create.
type CreateResult struct {
	Merchant *entity.Merchant
	Rejected []string // Malformed pincode tokens that were dropped.
}

// PincodeChange is the outcome of an add or remove of serviced pincodes.
type PincodeChange struct {
	Merchant *entity.Merchant
	Applied  []string // Pincodes that actually changed membership.
	Rejected []string // Malformed pincode tokens that were ignored.
}

// Registry coordinates every write to the Store and the Index.
//
// Writes to one merchant are serialized by a per-id lock and go through the
// backing repository first. A successful repository write is the commit
// point; the in-memory apply that follows cannot fail, so a caller that gives
// up never leaves the store and the index disagreeing.
//
// Readers take no per-id lock, so pincode edits are not atomic to them.
// AddPincodes links the index before the record lists the new pincode, and
// RemovePincodes drops it from the record before unlinking. For that short
// window a Query can return an id whose record does not list the pincode.
// Create and Delete stage or hide the record around the index change, so
// readers see a merchant either fully present or gone.
//
// A nil TransactionManager keeps everything in memory. A nil mirror skips
// the external index copy.
type Registry struct {
	store     *Store
	index     *Index
	locks     *keyLocker
	validator *Validator
	txManager repository.TransactionManager
	mirror    repository.ServiceabilityMirror
	logger    *slog.Logger

	writeTimeout time.Duration
	lastID       atomic.Int64
}

// NewRegistry creates an empty registry. Call Hydrate before serving when a
// backing store is configured.
func NewRegistry(
	validator *Validator,
	txManager repository.TransactionManager,
	mirror repository.ServiceabilityMirror,
	logger *slog.Logger,
	opts Options,
) *Registry {
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = lifecycle.DefaultTimeout
	}

	return &Registry{
		store:        NewStore(),
		index:        NewIndex(),
		locks:        newKeyLocker(),
		validator:    validator,
		txManager:    txManager,
		mirror:       mirror,
		logger:       logger.With(slog.String("component", "registry")),
		writeTimeout: opts.WriteTimeout,
	}
}

// Hydrate loads every stored merchant and seeds the id sequence.
func (r *Registry) Hydrate(ctx context.Context) error {
	if r.txManager == nil {
		return nil
	}

	var (
		merchants []*entity.Merchant
		maxID     entity.MerchantID
	)
	err := r.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewMerchantRepository()

		var err error
		if merchants, err = repo.ListMerchants(ctx); err != nil {
			return errors.Wrap(err, "failed to list merchants")
		}
		if maxID, err = repo.MaxMerchantID(ctx); err != nil {
			return errors.Wrap(err, "failed to read max merchant id")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to hydrate registry")
	}

	for _, merchant := range merchants {
		merchant.Pincodes = entity.UniquePincodes(merchant.Pincodes)
		r.store.stage(merchant)
		r.index.link(merchant.ID, merchant.Pincodes)
		r.store.publish(merchant.ID)
		maxID = max(maxID, merchant.ID)

		if r.mirror != nil && len(merchant.Pincodes) > 0 {
			if err := r.mirror.Link(ctx, merchant.ID, merchant.Pincodes); err != nil {
				r.logger.WarnContext(ctx, "Failed to resync serviceability mirror",
					slog.String("merchant_id", merchant.ID.String()),
					slog.Any("error", err),
				)
			}
		}
	}
	r.lastID.Store(int64(maxID))

	r.logger.InfoContext(ctx, "Registry hydrated",
		slog.Int("merchants", len(merchants)),
		slog.Int("pincodes", r.index.Size()),
		slog.String("last_id", maxID.String()),
	)

	return nil
}

// Create validates and stores a new merchant together with its initial
// pincodes. Malformed pincode tokens are dropped and reported; a profile
// failure rejects the whole merchant.
func (r *Registry) Create(ctx context.Context, input NewMerchant) (*CreateResult, error) {
	if err := r.validator.Profile(input.Profile); err != nil {
		return nil, err
	}
	valid, rejected := r.validator.Pincodes(input.Pincodes)

	id := entity.MerchantID(r.lastID.Add(1))
	unlock, err := r.locks.Lock(ctx, id)
	if err != nil {
		return nil, abandoned(ctx, "lock merchant "+id.String(), err)
	}
	defer unlock()

	now := time.Now().UTC()
	merchant := &entity.Merchant{ID: id, Pincodes: valid, CreatedAt: now, UpdatedAt: now}
	merchant.SetProfile(input.Profile)

	err = r.persist(ctx, "create merchant "+id.String(),
		func(ctx context.Context, repo repository.MerchantRepository) error {
			return repo.CreateMerchant(ctx, merchant)
		},
		r.linkStep(id, valid),
	)
	if err != nil {
		return nil, err
	}

	r.store.stage(merchant)
	r.index.link(id, valid)
	r.store.publish(id)

	r.logger.DebugContext(ctx, "Merchant created",
		slog.String("merchant_id", id.String()),
		slog.Int("pincodes", len(valid)),
		slog.Int("rejected", len(rejected)),
	)

	return &CreateResult{Merchant: merchant.Clone(), Rejected: rejected}, nil
}

// Get returns a copy of a merchant.
func (r *Registry) Get(id entity.MerchantID) (*entity.Merchant, error) {
	return r.store.Get(id)
}

// List returns the summaries of all merchants in id order.
func (r *Registry) List() []entity.MerchantSummary {
	return r.store.List()
}

// Update merges patch into the merchant's profile. Pincodes are untouched.
func (r *Registry) Update(ctx context.Context, id entity.MerchantID, patch entity.MerchantPatch) (*entity.Merchant, error) {
	unlock, err := r.locks.Lock(ctx, id)
	if err != nil {
		return nil, abandoned(ctx, "lock merchant "+id.String(), err)
	}
	defer unlock()

	current, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}

	profile := patch.ApplyTo(current.Profile())
	if err := r.validator.Profile(profile); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	updated := current.Clone()
	updated.SetProfile(profile)
	updated.UpdatedAt = time.Now().UTC()

	err = r.persist(ctx, "update merchant "+id.String(),
		func(ctx context.Context, repo repository.MerchantRepository) error {
			return repo.UpdateMerchantProfile(ctx, updated)
		},
		nil,
	)
	if err != nil {
		return nil, err
	}

	r.store.mutate(id, func(merchant *entity.Merchant) {
		merchant.SetProfile(profile)
		merchant.UpdatedAt = updated.UpdatedAt
	})

	return updated, nil
}

// Delete removes a merchant. Its id leaves every bucket before the record
// itself disappears.
func (r *Registry) Delete(ctx context.Context, id entity.MerchantID) error {
	unlock, err := r.locks.Lock(ctx, id)
	if err != nil {
		return abandoned(ctx, "lock merchant "+id.String(), err)
	}
	defer unlock()

	current, err := r.store.Get(id)
	if err != nil {
		return err
	}

	err = r.persist(ctx, "delete merchant "+id.String(),
		func(ctx context.Context, repo repository.MerchantRepository) error {
			return repo.DeleteMerchant(ctx, id)
		},
		r.unlinkStep(id, current.Pincodes),
	)
	if err != nil {
		return err
	}

	r.store.hide(id)
	r.purge(id, current.Pincodes)
	r.store.remove(id)

	r.logger.DebugContext(ctx, "Merchant deleted", slog.String("merchant_id", id.String()))

	return nil
}

// AddPincodes unions tokens into the merchant's serviced set. Pincodes the
// merchant already services are left alone; when nothing is new the call is
// a successful no-op.
func (r *Registry) AddPincodes(ctx context.Context, id entity.MerchantID, tokens []string) (*PincodeChange, error) {
	valid, rejected := r.validator.Pincodes(tokens)

	unlock, err := r.locks.Lock(ctx, id)
	if err != nil {
		return nil, abandoned(ctx, "lock merchant "+id.String(), err)
	}
	defer unlock()

	current, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}

	fresh := make([]string, 0, len(valid))
	for _, pincode := range valid {
		if !slices.Contains(current.Pincodes, pincode) {
			fresh = append(fresh, pincode)
		}
	}
	if len(fresh) == 0 {
		return &PincodeChange{Merchant: current, Applied: fresh, Rejected: rejected}, nil
	}

	err = r.persist(ctx, "add pincodes to merchant "+id.String(),
		func(ctx context.Context, repo repository.MerchantRepository) error {
			return repo.AddPincodes(ctx, id, fresh)
		},
		r.linkStep(id, fresh),
	)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	r.index.link(id, fresh)
	r.store.mutate(id, func(merchant *entity.Merchant) {
		merchant.Pincodes = append(merchant.Pincodes, fresh...)
		merchant.UpdatedAt = now
	})

	current.Pincodes = append(current.Pincodes, fresh...)
	current.UpdatedAt = now

	return &PincodeChange{Merchant: current, Applied: fresh, Rejected: rejected}, nil
}

// RemovePincodes drops tokens from the merchant's serviced set. Removing a
// pincode the merchant does not service is a successful no-op.
func (r *Registry) RemovePincodes(ctx context.Context, id entity.MerchantID, tokens []string) (*PincodeChange, error) {
	valid, rejected := r.validator.Pincodes(tokens)

	unlock, err := r.locks.Lock(ctx, id)
	if err != nil {
		return nil, abandoned(ctx, "lock merchant "+id.String(), err)
	}
	defer unlock()

	current, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}

	present := make([]string, 0, len(valid))
	for _, pincode := range valid {
		if slices.Contains(current.Pincodes, pincode) {
			present = append(present, pincode)
		}
	}
	if len(present) == 0 {
		return &PincodeChange{Merchant: current, Applied: present, Rejected: rejected}, nil
	}

	err = r.persist(ctx, "remove pincodes from merchant "+id.String(),
		func(ctx context.Context, repo repository.MerchantRepository) error {
			return repo.RemovePincodes(ctx, id, present)
		},
		r.unlinkStep(id, present),
	)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dropped := func(pincode string) bool { return slices.Contains(present, pincode) }
	r.store.mutate(id, func(merchant *entity.Merchant) {
		merchant.Pincodes = slices.DeleteFunc(merchant.Pincodes, dropped)
		merchant.UpdatedAt = now
	})
	r.index.unlink(id, present)

	current.Pincodes = slices.DeleteFunc(current.Pincodes, dropped)
	current.UpdatedAt = now

	return &PincodeChange{Merchant: current, Applied: present, Rejected: rejected}, nil
}

// purge removes id from every bucket it is linked under. The lockstep
// invariant makes the merchant's serviced set the complete list of those
// buckets. Purging twice is harmless.
func (r *Registry) purge(id entity.MerchantID, pincodes []string) {
	r.index.unlink(id, pincodes)
}

// Buckets returns the raw index content for pincodes, including ids whose
// records are still being created or deleted. Callers resolve them through Lookup.
func (r *Registry) Buckets(pincodes []string) map[string][]entity.MerchantID {
	return r.index.Query(entity.UniquePincodes(pincodes))
}

// Lookup resolves ids against the store.
func (r *Registry) Lookup(ids []entity.MerchantID) map[entity.MerchantID]Entry {
	return r.store.Lookup(ids)
}

// Query returns, for every distinct pincode, the ids of the committed
// merchants servicing it in link order. Unknown pincodes map to an empty list.
func (r *Registry) Query(pincodes []string) map[string][]entity.MerchantID {
	buckets := r.Buckets(pincodes)

	ids := make([]entity.MerchantID, 0)
	for _, bucket := range buckets {
		ids = append(ids, bucket...)
	}
	entries := r.store.Lookup(ids)

	for pincode, bucket := range buckets {
		buckets[pincode] = slices.DeleteFunc(bucket, func(id entity.MerchantID) bool {
			return entries[id].Presence != PresenceLive
		})
	}

	return buckets
}

// Stats reports the number of live merchants and non-empty pincode buckets.
func (r *Registry) Stats() (merchants, pincodes int) {
	return r.store.Len(), r.index.Size()
}

// mirrorStep is the external index change that accompanies a repository write.
type mirrorStep struct {
	apply func(ctx context.Context, mirror repository.ServiceabilityMirror) error
	undo  func(ctx context.Context, mirror repository.ServiceabilityMirror) error
}

func (r *Registry) linkStep(id entity.MerchantID, pincodes []string) *mirrorStep {
	if len(pincodes) == 0 {
		return nil
	}

	return &mirrorStep{
		apply: func(ctx context.Context, mirror repository.ServiceabilityMirror) error {
			return mirror.Link(ctx, id, pincodes)
		},
		undo: func(ctx context.Context, mirror repository.ServiceabilityMirror) error {
			return mirror.Unlink(ctx, id, pincodes)
		},
	}
}

func (r *Registry) unlinkStep(id entity.MerchantID, pincodes []string) *mirrorStep {
	if len(pincodes) == 0 {
		return nil
	}

	return &mirrorStep{
		apply: func(ctx context.Context, mirror repository.ServiceabilityMirror) error {
			return mirror.Unlink(ctx, id, pincodes)
		},
		undo: func(ctx context.Context, mirror repository.ServiceabilityMirror) error {
			return mirror.Link(ctx, id, pincodes)
		},
	}
}

// persist runs write inside a transaction, followed by the mirror step, all
// under the write timeout. When the transaction fails after the mirror
// step ran, the mirror change is reverted.
func (r *Registry) persist(
	ctx context.Context,
	op string,
	write func(ctx context.Context, repo repository.MerchantRepository) error,
	step *mirrorStep,
) error {
	if err := ctx.Err(); err != nil {
		return abandoned(ctx, op, err)
	}
	if r.mirror == nil {
		step = nil
	}
	if r.txManager == nil && step == nil {
		return nil
	}

	writeCtx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	mirrored := false
	apply := func(repo repository.MerchantRepository) error {
		if repo != nil {
			if err := write(writeCtx, repo); err != nil {
				return err
			}
		}
		if step != nil {
			if err := step.apply(writeCtx, r.mirror); err != nil {
				return errors.Wrap(err, "failed to update serviceability mirror")
			}
			mirrored = true
		}

		return nil
	}

	var err error
	if r.txManager == nil {
		err = apply(nil)
	} else {
		err = r.txManager.Execute(writeCtx, func(factory repository.RepositoryFactory) error {
			return apply(factory.NewMerchantRepository())
		})
	}

	if err != nil && mirrored {
		undoCtx, undoCancel := context.WithTimeout(context.WithoutCancel(ctx), r.writeTimeout)
		defer undoCancel()
		if undoErr := step.undo(undoCtx, r.mirror); undoErr != nil {
			r.logger.ErrorContext(ctx, "Failed to revert serviceability mirror",
				slog.String("op", op),
				slog.Any("error", undoErr),
			)
		}
	}

	return r.classify(ctx, op, err)
}

func (r *Registry) classify(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, repository.ErrMerchantIDConflict):
		return domainerrors.ErrConflict.WithDetails(op + ": " + err.Error())
	case errors.Is(err, repository.ErrMerchantNotFound):
		return domainerrors.ErrMerchantNotFound.WithDetails(op + ": " + err.Error())
	case ctx.Err() != nil && isContextError(err):
		return abandoned(ctx, op, err)
	}

	var baseErr *domainerrors.BaseError
	if errors.As(err, &baseErr) {
		return err
	}

	r.logger.WarnContext(ctx, "Persistence write failed",
		slog.String("op", op),
		slog.Any("error", err),
	)

	return domainerrors.ErrDependencyUnavailable.WithDetails(op + ": " + err.Error())
}

// abandoned wraps a failure caused by the caller's own context as
// ErrRequestCanceled. Other errors are wrapped with op only.
func abandoned(ctx context.Context, op string, err error) error {
	wrapped := errors.Wrap(err, op)
	if ctx.Err() != nil && isContextError(err) {
		return domainerrors.Canceled(wrapped)
	}

	return wrapped
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
