package meta

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/mcmeta/mcmeta/pkg/gradle"
	"github.com/mcmeta/mcmeta/pkg/jsonobject"
	"github.com/mcmeta/mcmeta/pkg/mojang"
)

const sampleVersionFile = `{
	"formatVersion": 1,
	"name": "Minecraft",
	"version": "1.7.10",
	"uid": "net.minecraft",
	"requires": [
		{"uid": "org.lwjgl", "suggests": "2.9.1"}
	],
	"assetIndex": {
		"id": "1.7.10",
		"totalSize": 112396854,
		"url": "https://launchermeta.mojang.com/v1/packages/1863782e/1.7.10.json"
	},
	"libraries": [
		{
			"name": "net.minecraft:launchwrapper:1.12",
			"MMC-hint": "local"
		}
	],
	"mainJar": {
		"name": "com.mojang:minecraft:1.7.10:client",
		"downloads": {
			"artifact": {
				"sha1": "e80d9b3bf5085002218d4be59e668bac718abbc6",
				"size": 5256245,
				"url": "https://launcher.mojang.com/v1/objects/e80d9b3b/client.jar"
			}
		}
	},
	"mainClass": "net.minecraft.client.main.Main",
	"releaseTime": "2014-05-14T17:29:23+00:00",
	"type": "release",
	"+traits": ["legacyLaunch"],
	"+tweakers": ["cpw.mods.fml.common.launcher.FMLTweaker"],
	"order": 0
}`

func TestParseVersionFile(t *testing.T) {
	v, err := ParseVersionFile([]byte(sampleVersionFile))
	if err != nil {
		t.Fatal(err)
	}

	if v.UID != "net.minecraft" || v.Version != "1.7.10" {
		t.Errorf("uid/version = %q/%q", v.UID, v.Version)
	}
	if v.FormatVersion != 1 {
		t.Errorf("FormatVersion = %d", v.FormatVersion)
	}
	if len(v.Requires) != 1 || v.Requires[0].Suggests != "2.9.1" {
		t.Errorf("requires = %+v", v.Requires)
	}
	if v.Libraries[0].MMCHint != "local" {
		t.Errorf("MMCHint = %q", v.Libraries[0].MMCHint)
	}
	if v.MainJar.Name.Classifier != "client" {
		t.Errorf("mainJar = %+v", v.MainJar.Name)
	}
	if len(v.AddTraits) != 1 || v.AddTraits[0] != "legacyLaunch" {
		t.Errorf("+traits = %v", v.AddTraits)
	}
	if len(v.AddTweakers) != 1 {
		t.Errorf("+tweakers = %v", v.AddTweakers)
	}
	if v.Order == nil || *v.Order != 0 {
		t.Errorf("order = %v", v.Order)
	}
}

func TestFormatVersionGate(t *testing.T) {
	_, err := ParseVersionFile([]byte(`{"formatVersion": 2, "name": "x", "version": "1", "uid": "x"}`))
	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if unsupported.Version != 2 || unsupported.Max != 1 {
		t.Errorf("error = %+v", unsupported)
	}

	v, err := ParseVersionFile([]byte(`{"formatVersion": 1, "name": "x", "version": "1", "uid": "x"}`))
	if err != nil {
		t.Fatal(err)
	}
	if v.FormatVersion != 1 {
		t.Errorf("FormatVersion = %d", v.FormatVersion)
	}

	// an omitted formatVersion defaults to the current one
	v, err = ParseVersionFile([]byte(`{"name": "x", "version": "1", "uid": "x"}`))
	if err != nil {
		t.Fatal(err)
	}
	if v.FormatVersion != CurrentFormatVersion {
		t.Errorf("defaulted FormatVersion = %d", v.FormatVersion)
	}
}

func TestParseVersionFileMissingFields(t *testing.T) {
	_, err := ParseVersionFile([]byte(`{}`))
	var missing *jsonobject.MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != "name" {
		t.Errorf("error names field %q, want name", missing.Field)
	}

	// a dependency carries nothing but a uid just fine
	var dep Dependency
	if err := jsonobject.Decode([]byte(`{"uid": "net.minecraft"}`), dependencySchema, &dep); err != nil {
		t.Fatal(err)
	}
	if dep.UID != "net.minecraft" {
		t.Errorf("dep = %+v", dep)
	}

	// but inside a version file it must have one
	_, err = ParseVersionFile([]byte(`{"name": "x", "version": "1", "uid": "x", "requires": [{"suggests": "1.0"}]}`))
	if !errors.As(err, &missing) || missing.Field != "uid" {
		t.Errorf("expected missing uid error, got %v", err)
	}
}

func TestVersionFileRoundTrip(t *testing.T) {
	releaseTime, err := mojang.ParseTimestamp("2014-05-14T17:29:23+00:00")
	if err != nil {
		t.Fatal(err)
	}
	volatile := true
	order := 5

	original := &VersionFile{
		FormatVersion: 1,
		Name:          "Fabric Loader",
		Version:       "0.14.9",
		UID:           "net.fabricmc.fabric-loader",
		Requires:      []Dependency{{UID: "net.fabricmc.intermediary"}},
		Volatile:      &volatile,
		Libraries: []Library{
			{
				Library: mojang.Library{Name: gradle.MustParse("net.fabricmc:fabric-loader:0.14.9")},
				URL:     "https://maven.fabricmc.net/",
				MMCHint: "local",
			},
		},
		MainClass:   "net.fabricmc.loader.impl.launch.knot.KnotClient",
		ReleaseTime: &releaseTime,
		AddTraits:   []string{"XR:Initial"},
		AddTweakers: []string{"org.spongepowered.asm.launch.MixinTweaker"},
		Order:       &order,
	}

	encoded, err := original.Encode()
	if err != nil {
		t.Fatal(err)
	}

	// the renamed fields must appear under their wire keys
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &wire); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"+traits", "+tweakers"} {
		if _, ok := wire[key]; !ok {
			t.Errorf("encoded file is missing the %q key", key)
		}
	}
	var libs []map[string]json.RawMessage
	if err := json.Unmarshal(wire["libraries"], &libs); err != nil {
		t.Fatal(err)
	}
	if string(libs[0]["MMC-hint"]) != `"local"` {
		t.Errorf("MMC-hint on the wire = %s", libs[0]["MMC-hint"])
	}

	decoded, err := ParseVersionFile(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round-trip mismatch:\noriginal: %+v\ndecoded:  %+v", original, decoded)
	}
}

func TestLibrarySpecifiers(t *testing.T) {
	v, err := ParseVersionFile([]byte(sampleVersionFile))
	if err != nil {
		t.Fatal(err)
	}
	specs := v.LibrarySpecifiers()
	if len(specs) != 1 || specs[0].String() != "net.minecraft:launchwrapper:1.12" {
		t.Errorf("specifiers = %v", specs)
	}
}
