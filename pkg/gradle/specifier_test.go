package gradle

import (
	"encoding/json"
	"errors"
	"math/rand"
	"sort"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Specifier
	}{
		{
			name:  "plain",
			input: "net.minecraft:launchwrapper:1.5",
			want:  Specifier{Group: "net.minecraft", Artifact: "launchwrapper", Version: "1.5", Extension: "jar"},
		},
		{
			name:  "classifier",
			input: "org.lwjgl.lwjgl:lwjgl-platform:2.9.0:natives-linux",
			want: Specifier{
				Group: "org.lwjgl.lwjgl", Artifact: "lwjgl-platform", Version: "2.9.0",
				Classifier: "natives-linux", Extension: "jar",
			},
		},
		{
			name:  "extension",
			input: "net.minecraftforge:forge:1.12.2-14.23.5.2851:universal@zip",
			want: Specifier{
				Group: "net.minecraftforge", Artifact: "forge", Version: "1.12.2-14.23.5.2851",
				Classifier: "universal", Extension: "zip",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	invalid := []string{
		"",
		"lwjgl",
		"org.lwjgl:lwjgl",
		"org.lwjgl::2.9.0",
		":lwjgl:2.9.0",
	}

	for _, input := range invalid {
		_, err := Parse(input)
		if err == nil {
			t.Errorf("Parse(%q) should have failed", input)
			continue
		}
		var specErr *InvalidSpecifierError
		if !errors.As(err, &specErr) {
			t.Errorf("Parse(%q) returned %T, want *InvalidSpecifierError", input, err)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	inputs := []string{
		"net.minecraft:launchwrapper:1.5",
		"org.lwjgl.lwjgl:lwjgl-platform:2.9.0:natives-linux",
		"net.minecraftforge:forge:1.12.2:universal@zip",
		"com.mojang:minecraft:1.19@client",
	}

	for _, input := range inputs {
		spec := MustParse(input)
		if spec.String() != input {
			t.Errorf("MustParse(%q).String() = %q", input, spec.String())
		}
	}

	// the default extension is dropped from the canonical form
	spec := MustParse("net.minecraft:launchwrapper:1.5@jar")
	if spec.String() != "net.minecraft:launchwrapper:1.5" {
		t.Errorf("explicit @jar should be dropped, got %q", spec.String())
	}
}

func TestEquality(t *testing.T) {
	// the extension is not part of the identity
	if !MustParse("g:a:1.0@zip").Equal(MustParse("g:a:1.0")) {
		t.Error("g:a:1.0@zip should equal g:a:1.0")
	}
	if MustParse("g:a:1.0@zip").Key() != MustParse("g:a:1.0").Key() {
		t.Error("equal specifiers must share a key")
	}

	// the classifier is
	if MustParse("g:a:1.0:dbg").Equal(MustParse("g:a:1.0")) {
		t.Error("g:a:1.0:dbg should not equal g:a:1.0")
	}
}

func TestOrdering(t *testing.T) {
	canonical := []string{
		"com.mojang:patchy:1.1",
		"net.java.jinput:jinput:2.0.5",
		"net.minecraft:launchwrapper:1.5",
		"org.lwjgl.lwjgl:lwjgl:2.9.0",
		"org.lwjgl.lwjgl:lwjgl:2.9.1",
		"org.lwjgl.lwjgl:lwjgl:2.9.1:natives-osx",
	}

	specs := make([]Specifier, len(canonical))
	for i, s := range canonical {
		specs[i] = MustParse(s)
	}
	rand.New(rand.NewSource(42)).Shuffle(len(specs), func(i, j int) {
		specs[i], specs[j] = specs[j], specs[i]
	})

	sort.Slice(specs, func(i, j int) bool { return specs[i].Less(specs[j]) })

	for i, spec := range specs {
		if spec.String() != canonical[i] {
			t.Fatalf("sorted[%d] = %q, want %q", i, spec.String(), canonical[i])
		}
	}
}

func TestPaths(t *testing.T) {
	spec := MustParse("org.lwjgl:lwjgl:2.9.0")
	if spec.Path() != "org/lwjgl/lwjgl/2.9.0/lwjgl-2.9.0.jar" {
		t.Errorf("Path() = %q", spec.Path())
	}
	if spec.Base() != "org/lwjgl/lwjgl/2.9.0/" {
		t.Errorf("Base() = %q", spec.Base())
	}

	native := MustParse("org.lwjgl.lwjgl:lwjgl-platform:2.9.0:natives-windows")
	if native.Filename() != "lwjgl-platform-2.9.0-natives-windows.jar" {
		t.Errorf("Filename() = %q", native.Filename())
	}

	zipped := MustParse("net.minecraftforge:forge:1.12.2@zip")
	if zipped.Filename() != "forge-1.12.2.zip" {
		t.Errorf("Filename() = %q", zipped.Filename())
	}
}

func TestGroupClassifiers(t *testing.T) {
	if !MustParse("org.lwjgl.lwjgl:lwjgl:2.9.0").IsLwjgl() {
		t.Error("org.lwjgl.lwjgl should be lwjgl")
	}
	if !MustParse("net.java.jinput:jinput:2.0.5").IsLwjgl() {
		t.Error("net.java.jinput should count as lwjgl")
	}
	if MustParse("com.mojang:patchy:1.1").IsLwjgl() {
		t.Error("com.mojang is not lwjgl")
	}
	if !MustParse("org.apache.logging.log4j:log4j-core:2.17.1").IsLog4j() {
		t.Error("log4j-core should be log4j")
	}
}

func TestJSON(t *testing.T) {
	var spec Specifier
	if err := json.Unmarshal([]byte(`"org.lwjgl:lwjgl:2.9.0@zip"`), &spec); err != nil {
		t.Fatal(err)
	}
	if spec.Extension != "zip" {
		t.Errorf("Extension = %q, want zip", spec.Extension)
	}

	out, err := json.Marshal(spec)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"org.lwjgl:lwjgl:2.9.0@zip"` {
		t.Errorf("Marshal = %s", out)
	}

	if err := json.Unmarshal([]byte(`"broken"`), &spec); err == nil {
		t.Error("unmarshal of invalid specifier should fail")
	}
}
