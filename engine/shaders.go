package engine

// One program serves all three draw modes; the Mode uniform selects the
// shading formula per fragment.

var pointVertexShader = `
#version 410 core

layout(location = 0) in vec3 POSITION;
layout(location = 1) in vec3 NORMAL;

uniform mat4 MVP;

out vec3 _Normal;

void main() {
	gl_Position = MVP * vec4(POSITION, 1.0);
	_Normal = NORMAL;
}`

var pointFragmentShader = `
#version 410 core

in vec3 _Normal;

uniform int Mode;
uniform vec3 LightDir;
uniform vec4 LightCol;
uniform vec4 DiffuseCol;
uniform vec4 AmbientCol;
uniform float LightIntensity;
uniform int ClampDiffuse;

out vec4 frag;

void main() {
	if (Mode == 0) {
		frag = vec4(DiffuseCol.rgb, 1.0);
	} else if (Mode == 1) {
		frag = vec4(abs(normalize(_Normal)), 1.0);
	} else {
		float d = dot(_Normal, -normalize(LightDir));
		if (ClampDiffuse != 0) {
			d = max(d, 0.0);
		}
		frag = AmbientCol + d * LightIntensity * LightCol * DiffuseCol;
	}
}`

// pointUniforms lists every uniform the point program resolves at link
// time.
var pointUniforms = []string{
	"MVP",
	"Mode",
	"LightDir",
	"LightCol",
	"DiffuseCol",
	"AmbientCol",
	"LightIntensity",
	"ClampDiffuse",
}
