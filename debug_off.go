//go:build !joyquatdebug

package joyquat

const debug = false
