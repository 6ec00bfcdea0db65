// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import "github.com/albertocavalcante/chainconf/render"

func init() {
	render.Register(render.NewJSON())
	render.Register(render.NewYAML())
	render.Register(render.NewHCL())
}
