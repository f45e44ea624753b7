package main

import "github.com/go-gl/glfw/v3.3/glfw"

// glfwClock is the fall timer. It shares GLFW's global timer, so nothing else
// may call glfw.SetTime.
type glfwClock struct{}

func (glfwClock) Elapsed() float64 { return glfw.GetTime() }

func (glfwClock) Reset() { glfw.SetTime(0) }
