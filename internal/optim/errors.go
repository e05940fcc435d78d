// Copyright 2025 The Geomopt Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import "fmt"

// ConfigurationError reports an invalid optimizer or problem
// configuration, such as an unknown beta-rule name. Constructors return
// it eagerly so a misconfigured optimizer never starts iterating.
type ConfigurationError struct {
	Component string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("optim: %s: %s", e.Component, e.Reason)
}
