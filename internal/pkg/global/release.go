// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

//go:build release

package global

import (
	"fmt"

	"github.com/trim21/strv/internal/version"
)

var UserAgent = fmt.Sprintf("strv/%d.%d.%d (https://github.com/trim21/strv)", version.MAJOR, version.MINOR, version.PATCH)

const Dev = false
