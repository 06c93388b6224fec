package buildinfo

import (
	"fmt"
	"testing"

	. "src.pina.sh/pkg/prog/progtest"
	"src.pina.sh/pkg/testutil"
)

func TestProgram(t *testing.T) {
	info := Value()
	Test(t, Program,
		ThatPina("-version").WritesStdout(info.Version+"\n"),
		ThatPina("-version", "-json").WritesStdout(mustToJSON(info.Version)+"\n"),

		ThatPina("-buildinfo").WritesStdout(
			fmt.Sprintf(
				"Version: %v\nGo version: %v\nReproducible build: %v\n",
				info.Version, info.GoVersion, info.Reproducible)),
		ThatPina("-buildinfo", "-json").WritesStdout(mustToJSON(info)+"\n"),

		ThatPina().ExitsWith(2).WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestValue(t *testing.T) {
	info := Value()
	if info.Version != Version+VersionSuffix {
		t.Errorf("Version -> %q, want %q", info.Version, Version+VersionSuffix)
	}
	if info.GoVersion == "" {
		t.Errorf("GoVersion is empty")
	}
}

func TestValue_VersionSuffix(t *testing.T) {
	testutil.Set(t, &VersionSuffix, "-test")
	testutil.Set(t, &Reproducible, "true")
	info := Value()
	if info.Version != Version+"-test" || !info.Reproducible {
		t.Errorf("Value() -> %+v, want version %q and reproducible", info, Version+"-test")
	}
}
