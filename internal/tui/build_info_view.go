// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/venture-portal/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, siteName string) string {
	var b strings.Builder

	b.WriteString("Application: ")
	b.WriteString(siteName)
	b.WriteString(" portal client\n")
	b.WriteString(strings.Join(info.Lines(), "\n"))

	return renderPage("ABOUT THIS CLIENT", b.String(), "esc: back")
}
