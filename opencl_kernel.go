package main

import (
	"fmt"
	"strconv"
	"strings"
)

const displaceKernelName = "displace_surface"

// displaceKernelPrelude holds the noise helpers shared by every generated kernel.
const displaceKernelPrelude = `float hash2(float2 p) {
    float h = sin(dot(p, (float2)(%s, %s))) * %s;
    float f = h - floor(h);
    return f >= 1.0f ? 0.0f : f;
}

float value_noise(float2 p) {
    float2 i = floor(p);
    float2 f = p - i;
    float2 u = f * f * (3.0f - 2.0f * f);
    float a = hash2(i);
    float b = hash2(i + (float2)(1.0f, 0.0f));
    float c = hash2(i + (float2)(0.0f, 1.0f));
    float d = hash2(i + (float2)(1.0f, 1.0f));
    return mix(mix(a, b, u.x), mix(c, d, u.x), u.y);
}

float noise_term(float2 p, float t, float scale, float rate, float magnitude) {
    return value_noise(p * scale + (float2)(t * rate, t * rate)) * magnitude;
}

float smooth_limit(float edge0, float edge1, float x) {
    float t = clamp((x - edge0) / (edge1 - edge0), 0.0f, 1.0f);
    return t * t * (3.0f - 2.0f * t);
}
`

// displaceKernelSource renders the OpenCL kernel from the wave and detail
// tables so the device and host formulas share one definition.
func displaceKernelSource() string {
	var b strings.Builder
	fmt.Fprintf(&b, displaceKernelPrelude, clFloat(hashWeights[0]), clFloat(hashWeights[1]), clFloat(hashScale))
	b.WriteString("\n__kernel void " + displaceKernelName + "(\n")
	b.WriteString("    const int count,\n    const float time,\n    const float amplitude,\n")
	b.WriteString("    __global const float* base,\n    __global float* out)\n{\n")
	b.WriteString("    int v = get_global_id(0);\n    if (v >= count) {\n        return;\n    }\n")
	b.WriteString("    int i = v * 3;\n    float2 p = (float2)(base[i], base[i + 1]);\n")
	b.WriteString("    float t = time;\n    float combined = 0.0f;\n")
	for k, w := range surfaceWaves {
		fmt.Fprintf(&b, "    {\n")
		fmt.Fprintf(&b, "        float amp = %s + %s;\n", clFloat(w.baseAmplitude), clNoiseTerm(w.amplitudeNoise))
		fmt.Fprintf(&b, "        float freq = %s + %s;\n", clFloat(w.baseFrequency), clNoiseTerm(w.frequencyNoise))
		fmt.Fprintf(&b, "        combined += sin(dot(p, (float2)(%s, %s)) * freq + t * freq) * amp; // wave %d\n",
			clFloat(w.direction[0]), clFloat(w.direction[1]), k+1)
		fmt.Fprintf(&b, "    }\n")
	}
	fmt.Fprintf(&b, "    float total = combined * %s;\n", clFloat(waveDamping))
	for _, layer := range detailLayers {
		fmt.Fprintf(&b, "    total += %s;\n", clNoiseTerm(layer))
	}
	fmt.Fprintf(&b, "    float dampened = total * smooth_limit(0.0f, %s, %s - fabs(total));\n",
		clFloat(limiterEdge), clFloat(limiterCeiling))
	b.WriteString("    out[i] = base[i];\n    out[i + 1] = base[i + 1];\n")
	b.WriteString("    out[i + 2] = base[i + 2] + dampened * amplitude;\n}\n")
	return b.String()
}

// clFloat formats v as an OpenCL C float literal.
func clFloat(v float32) string {
	s := strconv.FormatFloat(float64(v), 'g', -1, 32)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s + "f"
}

func clNoiseTerm(n noiseTerm) string {
	return fmt.Sprintf("noise_term(p, t, %s, %s, %s)", clFloat(n.scale), clFloat(n.rate), clFloat(n.magnitude))
}
