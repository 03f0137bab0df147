package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"

	"seedscape/internal/palette"
	"seedscape/internal/terrain"
)

const (
	cellSize = 120
	margin   = 16
)

func init() {
	runtime.LockOSThread()
}

func main() {
	seedFlag := flag.String("seed", "test2", "seed string")
	count := flag.Int("palette", 5, "number of adjacent colors")
	factor := flag.Float64("factor", palette.DefaultFactor, "perturbation factor")
	flag.Parse()

	params, err := terrain.Derive(*seedFlag, *count, *factor)
	if err != nil {
		closer.Fatalln(err)
	}
	cells := append([]palette.RGB{params.BaseColor}, params.Palette...)
	width := len(cells)*cellSize + (len(cells)+1)*margin
	height := cellSize + 2*margin

	if err := glfw.Init(); err != nil {
		closer.Fatalln(err)
	}
	closer.Bind(glfw.Terminate)

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	title := fmt.Sprintf("seedscape - %s", *seedFlag)
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		closer.Fatalln(err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		closer.Fatalln(err)
	}

	program, err := newProgram(vertexSrc, fragmentSrc)
	if err != nil {
		closer.Fatalln(err)
	}
	closer.Bind(func() { gl.DeleteProgram(program) })

	vertices := cellVertices(cells)
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	closer.Bind(func() {
		gl.DeleteBuffers(1, &vbo)
		gl.DeleteVertexArrays(1, &vao)
	})

	// layout: x, y, r, g, b
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(2*4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	projection := mgl32.Ortho2D(0, float32(width), float32(height), 0)
	gl.UseProgram(program)
	projUniform := gl.GetUniformLocation(program, gl.Str("projection\x00"))
	gl.UniformMatrix4fv(projUniform, 1, false, &projection[0])

	gl.ClearColor(0.08, 0.08, 0.08, 1.0)
	log.Printf("seed %q: base %s, %d palette colors", *seedFlag, params.BaseColor.Hex(), len(params.Palette))

	for !window.ShouldClose() {
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}
		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/5))
		window.SwapBuffers()
		glfw.PollEvents()
	}
	closer.Close()
}

// cellVertices lays the colors out left to right as two triangles each.
func cellVertices(cells []palette.RGB) []float32 {
	out := make([]float32, 0, len(cells)*6*5)
	for i, c := range cells {
		x0 := float32(margin + i*(cellSize+margin))
		y0 := float32(margin)
		x1, y1 := x0+cellSize, y0+cellSize
		col := c.Vec().Mul(1 / palette.MaxChannel)
		r, g, b := float32(col[0]), float32(col[1]), float32(col[2])
		for _, p := range [][2]float32{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y0}, {x1, y1}, {x0, y1}} {
			out = append(out, p[0], p[1], r, g, b)
		}
	}
	return out
}

const vertexSrc = `#version 410 core
layout(location = 0) in vec2 position;
layout(location = 1) in vec3 color;
uniform mat4 projection;
out vec3 vColor;
void main() {
	vColor = color;
	gl_Position = projection * vec4(position, 0.0, 1.0);
}` + "\x00"

const fragmentSrc = `#version 410 core
in vec3 vColor;
out vec4 fragColor;
void main() {
	fragColor = vec4(vColor, 1.0);
}` + "\x00"

// newProgram compiles shaders and links them into a program.
func newProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	v, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	f, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, v)
	gl.AttachShader(program, f)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		msg := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &msg[0])
		return 0, fmt.Errorf("program link error: %s", string(msg))
	}

	// shaders can be deleted after linking
	gl.DeleteShader(v)
	gl.DeleteShader(f)
	return program, nil
}

func compileShader(src string, kind uint32) (uint32, error) {
	s := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(s, 1, csrc, nil)
	free()
	gl.CompileShader(s)

	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &logLength)
		msg := make([]byte, logLength+1)
		gl.GetShaderInfoLog(s, logLength, nil, &msg[0])
		return 0, fmt.Errorf("compile error: %s", string(msg))
	}
	return s, nil
}
