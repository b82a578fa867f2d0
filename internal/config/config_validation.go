// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies
// invariants shared by every binary before it is used at startup.
//
// Currently a no-op placeholder; the merged config is also consumed by the
// capture client, which does not require the server-side fields. Server
// startup calls [StructuredConfig.ValidateServer] instead.
func (cfg *StructuredConfig) validate() error {
	return nil
}

// ValidateServer checks the fields the intake server cannot start without.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Images.Dir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.MRNKeyPath == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.SessionDBPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
