package engine

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program is a compiled and linked shader program with its uniform
// locations resolved up front. Compilation failure is fatal to startup;
// there is no partial-shader fallback.
type Program struct {
	program  uint32
	uniforms map[string]int32
}

func NewProgram(vertex, fragment string, uniforms []string) (*Program, error) {
	vshader, err := compileShader(vertex, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader error: %v", err)
	}
	defer gl.DeleteShader(vshader)

	fshader, err := compileShader(fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader error: %v", err)
	}
	defer gl.DeleteShader(fshader)

	prg := &Program{
		program:  gl.CreateProgram(),
		uniforms: make(map[string]int32),
	}

	gl.AttachShader(prg.program, vshader)
	gl.AttachShader(prg.program, fshader)
	gl.LinkProgram(prg.program)

	var status int32
	gl.GetProgramiv(prg.program, gl.LINK_STATUS, &status)
	if status != gl.TRUE {
		return nil, fmt.Errorf("linker error: %v", programInfoLog(prg.program))
	}

	for _, u := range uniforms {
		prg.uniforms[u] = gl.GetUniformLocation(prg.program, gl.Str(u+"\x00"))
	}

	return prg, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status != gl.TRUE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)

		logBuf := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(logBuf))
		return 0, fmt.Errorf("%v", strings.TrimRight(logBuf, "\x00"))
	}

	return shader, nil
}

func programInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)

	logBuf := strings.Repeat("\x00", int(length+1))
	gl.GetProgramInfoLog(program, length, nil, gl.Str(logBuf))
	return strings.TrimRight(logBuf, "\x00")
}

func (p *Program) Use() {
	gl.UseProgram(p.program)
}

func (p *Program) Dispose() {
	gl.DeleteProgram(p.program)
}

// Uniform returns the cached location; asking for an unknown name is a
// programmer error.
func (p *Program) Uniform(name string) int32 {
	loc, ok := p.uniforms[name]
	if !ok {
		panic("unknown uniform: " + name)
	}
	return loc
}

// Push uploads the per-frame uniform set.
func (p *Program) Push(u FrameUniforms) {
	mvp := u.MVP
	lightDir := u.LightDir
	lightCol := u.LightColor
	diffuse := u.DiffuseColor
	ambient := u.AmbientColor

	gl.UniformMatrix4fv(p.Uniform("MVP"), 1, false, &mvp[0])
	gl.Uniform1i(p.Uniform("Mode"), u.Mode)
	gl.Uniform3fv(p.Uniform("LightDir"), 1, &lightDir[0])
	gl.Uniform4fv(p.Uniform("LightCol"), 1, &lightCol[0])
	gl.Uniform4fv(p.Uniform("DiffuseCol"), 1, &diffuse[0])
	gl.Uniform4fv(p.Uniform("AmbientCol"), 1, &ambient[0])
	gl.Uniform1f(p.Uniform("LightIntensity"), u.LightIntensity)
	gl.Uniform1i(p.Uniform("ClampDiffuse"), u.ClampDiffuse)
}
