/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "github.com/humaidq/bioage/logging"

var appLogger = logging.Logger(logging.SourceApp)
var engineLogger = logging.Logger(logging.SourceEngine)
var requestStdLogger = logging.StdLogger(logging.SourceWebRequest)
