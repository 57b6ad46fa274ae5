// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package supervised runs a single task the way every thread in the process runs its work:
// the task is timed, its failure (a returned error or a panic) is logged once and tagged with the
// thread name, and the result is handed back as an Outcome instead of being re-thrown.
// Run go tools (build/test) with "-tags norecover" to disable panic recovery (useful for debugging/testing)
package supervised
