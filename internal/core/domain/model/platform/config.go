// Package platform contains the Config aggregate: the single administrative
// record of the settlement platform. There is exactly one Config per
// platform authority, stored at an address derived from the authority
// identity, and it gates every other operation of the engine.
package platform

import (
	"errors"

	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/errs"
	"avpayments/internal/pkg/guard"
)

// MaxFeeBps is the upper bound of the platform fee rate in basis points.
// 10000 bps equals 100%.
const MaxFeeBps uint16 = 10_000

// Domain errors for platform configuration.
var (
	// ErrConfigIsNotConstructed is returned when using an improperly initialized Config.
	ErrConfigIsNotConstructed = errors.New("Config must be created via NewConfig constructor")
)

// ConfigAddress derives the storage address of the Config record owned by
// the given platform authority.
func ConfigAddress(authority kernel.Identity) kernel.Address {
	raw := authority.Bytes()
	return kernel.DeriveAddress("config", raw[:])
}

// Config is the aggregate root for platform administration.
//
// Config follows these invariants:
//   - authority and treasury are valid identities fixed at creation
//   - feeBps stays within [0, MaxFeeBps]
//   - operational flags gate new deliveries: no delivery operation proceeds
//     while the platform is inactive or paused
//   - mutable only through authority-signed admin operations
//
// The fee rate read at completion time is applied to a delivery exactly
// once, so a later fee change never alters an already settled delivery.
type Config struct {
	// authority is the identity permitted to administer the platform
	authority kernel.Identity
	// treasury is the identity receiving platform fees
	treasury kernel.Identity
	// feeBps is the platform fee rate in basis points
	feeBps uint16
	// isActive reports whether the platform accepts operations at all
	isActive bool
	// isPaused suspends operations without deactivating the platform
	isPaused bool
	// version is the optimistic concurrency token of the persisted record
	version int64

	guard guard.ConstructorGuard
}

// NewConfig creates the platform Config for an authority. The platform
// starts active and unpaused. The fee rate must not exceed MaxFeeBps.
func NewConfig(authority kernel.Identity, treasury kernel.Identity, feeBps uint16) (*Config, error) {
	config := &Config{
		isActive: true,
		isPaused: false,
		version:  1,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		config.setAuthority(authority),
		config.setTreasury(treasury),
		config.setFeeBps(feeBps),
	); err != nil {
		return nil, err
	}

	return config, nil
}

// RestoreConfig reconstructs a Config aggregate from persistent storage,
// including its operational flags and concurrency version.
func RestoreConfig(
	authority kernel.Identity,
	treasury kernel.Identity,
	feeBps uint16,
	isActive bool,
	isPaused bool,
	version int64,
) (*Config, error) {
	config := &Config{
		isActive: isActive,
		isPaused: isPaused,
		version:  version,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		config.setAuthority(authority),
		config.setTreasury(treasury),
		config.setFeeBps(feeBps),
	); err != nil {
		return nil, err
	}
	if version <= 0 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	return config, nil
}

// Validate ensures the Config instance was properly constructed.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigIsNotConstructed
	}
	return c.guard.Validate(ErrConfigIsNotConstructed)
}

// Address returns the derived storage address of the config record.
func (c *Config) Address() kernel.Address {
	return ConfigAddress(c.authority)
}

// Authority returns the identity permitted to administer the platform.
func (c *Config) Authority() kernel.Identity {
	return c.authority
}

// Treasury returns the identity receiving platform fees.
func (c *Config) Treasury() kernel.Identity {
	return c.treasury
}

// FeeBps returns the platform fee rate in basis points.
func (c *Config) FeeBps() uint16 {
	return c.feeBps
}

// IsActive reports whether the platform is active.
func (c *Config) IsActive() bool {
	return c.isActive
}

// IsPaused reports whether the platform is paused.
func (c *Config) IsPaused() bool {
	return c.isPaused
}

// Version returns the optimistic concurrency token of the persisted record.
func (c *Config) Version() int64 {
	return c.version
}

// EnsureAcceptingOperations fails with InvalidState when the operational
// flags forbid new work. Every delivery-facing operation checks this gate
// before touching any other record.
func (c *Config) EnsureAcceptingOperations() error {
	if !c.isActive {
		return errs.NewInvalidStateError("platform is inactive")
	}
	if c.isPaused {
		return errs.NewInvalidStateError("platform is paused")
	}
	return nil
}

// UpdateFee changes the platform fee rate. The new rate must stay within
// [0, MaxFeeBps]. Deliveries already settled keep the rate that was applied
// to them.
func (c *Config) UpdateFee(feeBps uint16) error {
	return c.setFeeBps(feeBps)
}

// SetOperationalFlags updates the flags gating new deliveries.
func (c *Config) SetOperationalFlags(isActive bool, isPaused bool) {
	c.isActive = isActive
	c.isPaused = isPaused
}

func (c *Config) setAuthority(authority kernel.Identity) error {
	if err := authority.Validate(); err != nil {
		return err
	}
	c.authority = authority
	return nil
}

func (c *Config) setTreasury(treasury kernel.Identity) error {
	if err := treasury.Validate(); err != nil {
		return err
	}
	c.treasury = treasury
	return nil
}

func (c *Config) setFeeBps(feeBps uint16) error {
	if feeBps > MaxFeeBps {
		return errs.NewValueIsOutOfRangeError("feeBps", feeBps, 0, MaxFeeBps)
	}
	c.feeBps = feeBps
	return nil
}
