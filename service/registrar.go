package service

import (
	"context"
	"time"

	"myregistrar/domain"
	"myregistrar/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const deregisterTimeout = 5 * time.Second

// RegistrarConfig holds the resolution inputs and the publication cadence.
// ManagementContextPath and ManagementPort are optional; nil means not
// configured.
type RegistrarConfig struct {
	Instance              domain.InstanceConfig
	ServerPort            int
	ServerContextPath     string
	ManagementContextPath *string
	ManagementPort        *int
	TTLMs                 int
	Interval              time.Duration
}

// Registrar periodically resolves management metadata and publishes the
// instance registration to the discovery registry. Re-registering every
// interval refreshes the registration TTL, which is the liveness signal.
type Registrar struct {
	cfg       RegistrarConfig
	provider  interfaces.MetadataProvider
	publisher interfaces.Publisher
	now       func() time.Time
	logger    log.Logger
}

// NewRegistrar creates a new Registrar.
func NewRegistrar(cfg RegistrarConfig, provider interfaces.MetadataProvider, publisher interfaces.Publisher, logger log.Logger) *Registrar {
	logger = log.WithPrefix(logger, "component", "Registrar")
	return &Registrar{
		cfg:       cfg,
		provider:  provider,
		publisher: publisher,
		now:       time.Now,
		logger:    logger,
	}
}

// RegisterOnce resolves the management metadata and publishes one registration.
// Returns:
// 1) (true, nil) when the instance was registered;
// 2) (false, nil) when metadata cannot be resolved yet (random port still
//    unbound) — not an error, retry on the next tick;
// 3) (false, err) on a bad_configuration from the resolver or a publisher
//    failure.
func (r *Registrar) RegisterOnce(ctx context.Context) (bool, error) {
	metadata, err := r.provider.Get(r.cfg.Instance, r.cfg.ServerPort, r.cfg.ServerContextPath, r.cfg.ManagementContextPath, r.cfg.ManagementPort)
	if err != nil {
		return false, err
	}
	if metadata == nil {
		return false, nil
	}

	reg := domain.Registration{
		InstanceID:  r.cfg.Instance.InstanceID,
		ServiceType: r.cfg.Instance.ServiceType,
		Hostname:    r.cfg.Instance.Hostname,
		Port:        r.cfg.ServerPort,
		Timestamp:   r.now(),
		TTLMs:       r.cfg.TTLMs,
		Metadata:    *metadata,
	}
	if err := r.publisher.Register(ctx, reg); err != nil {
		return false, err
	}

	level.Info(r.logger).Log(
		"msg", "instance registered",
		"instance_id", reg.InstanceID,
		"health_check_url", metadata.HealthCheckURL,
		"status_page_url", metadata.StatusPageURL,
		"management_port", metadata.ManagementPort,
	)
	return true, nil
}

// Run registers immediately and then re-registers every interval until ctx is
// canceled, then deregisters the instance. A bad_configuration error aborts
// the loop; publisher failures and unresolved random ports are logged and
// retried on the next tick.
func (r *Registrar) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		ok, err := r.RegisterOnce(ctx)
		switch {
		case IsBadConfigurationError(err):
			return err
		case err != nil:
			level.Error(r.logger).Log("msg", "registration failed, will retry", "err", err)
		case !ok:
			level.Info(r.logger).Log("msg", "management port not assigned yet, will retry")
		}

		select {
		case <-ctx.Done():
			return r.deregister()
		case <-ticker.C:
		}
	}
}

func (r *Registrar) deregister() error {
	// The run context is already canceled at this point.
	ctx, cancel := context.WithTimeout(context.Background(), deregisterTimeout)
	defer cancel()

	if err := r.publisher.Deregister(ctx, r.cfg.Instance.InstanceID); err != nil {
		level.Error(r.logger).Log("msg", "deregistration failed", "err", err)
		return err
	}
	level.Info(r.logger).Log("msg", "instance deregistered", "instance_id", r.cfg.Instance.InstanceID)
	return nil
}
