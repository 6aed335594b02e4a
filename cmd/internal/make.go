package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/gen2brain/beeep"
	archiver "github.com/mholt/archiver/v3"
	. "github.com/storozhukBM/build"
)

const coverageName = `coverage.out`
const cliName = `figures`
const binDirName = `bin`
const linterName = `golangci-lint`
const linterVersion = `v1.61.0`

var parallelism = strconv.Itoa(runtime.NumCPU() * 4)

var b = NewBuild(BuildOptions{})
var commands = []Command{
	{`build`, b.RunCmd(Go, `build`, `./...`)},

	{`buildInlineBounds`, b.ShRunCmd(
		Go, `build`, `-gcflags='-m -d=ssa/check_bce/debug=1'`, `./lib/seq/...`,
	)},

	{`clean`, clean},
	{`cleanAll`, func() { clean(); cleanExecutables() }},
	{`test`, test},
	{`testDebug`, b.RunCmd(Go, `test`, `-v`, `-race`, `./...`)},
	{`demo`, demo},

	{`lint`, cilint},

	{`coverage`, func() {
		clean()
		b.Run(
			Go, `test`, `-coverpkg=./...`, `-coverprofile=`+coverageName,
			`./lib/...`,
		)
		b.Run(Go, `tool`, `cover`, `-html=`+coverageName)
	}},
}

func test() {
	defer forceClean()
	b.Run(Go, `test`, `-parallel`, parallelism, `./...`)
}

func demo() {
	b.Run(Go, `build`, `-o`, filepath.Join(binDirName, cliName), `./cmd/figures`)
	b.Run(filepath.Join(binDirName, cliName), `demo`)
}

func clean() {
	b.Once(`cleanOnce`, func() { forceClean() })
}

func forceClean() {
	b.Run(Go, `clean`, `./...`)
	b.Run(`rm`, `-f`, coverageName)
}

func cleanExecutables() {
	b.Run(`rm`, `-rf`, binDirName)
}

func cilint() {
	linter, resolveErr := resolveLinter()
	if resolveErr != nil {
		b.AddError(resolveErr)
		return
	}
	b.Run(linter, `-j`, parallelism, `run`, `./...`)
}

// resolveLinter returns the path to the pinned linter executable,
// downloading and unpacking its release archive into binDirName if it's missing.
func resolveLinter() (string, error) {
	releaseName := fmt.Sprintf("%s-%s-%s-%s", linterName, linterVersion[1:], runtime.GOOS, runtime.GOARCH)
	executable := filepath.Join(binDirName, releaseName, linterName)
	archiveType := "tar.gz"
	if runtime.GOOS == "windows" {
		executable += ".exe"
		archiveType = "zip"
	}
	if _, statErr := os.Stat(executable); statErr == nil {
		return executable, nil
	}

	releaseUrl := fmt.Sprintf(
		"https://github.com/golangci/golangci-lint/releases/download/%s/%s.%s",
		linterVersion, releaseName, archiveType,
	)
	archivePath, downloadErr := download(releaseUrl, archiveType)
	if downloadErr != nil {
		return "", downloadErr
	}
	defer os.Remove(archivePath)

	if unarchiveErr := archiver.Unarchive(archivePath, binDirName); unarchiveErr != nil {
		return "", fmt.Errorf("can't unpack %v: %v", archivePath, unarchiveErr)
	}
	if _, statErr := os.Stat(executable); statErr != nil {
		return "", fmt.Errorf("release %v has no %v: %v", releaseUrl, executable, statErr)
	}
	return executable, nil
}

func download(url string, extension string) (string, error) {
	fmt.Printf("downloading %s\n", url)
	resp, getErr := http.Get(url)
	if getErr != nil {
		return "", fmt.Errorf("can't download %v: %v", url, getErr)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("can't download %v: %v", url, resp.Status)
	}

	dst, createErr := os.CreateTemp("", "*."+extension)
	if createErr != nil {
		return "", fmt.Errorf("can't create temp file for %v: %v", url, createErr)
	}
	defer dst.Close()
	if _, copyErr := io.Copy(dst, resp.Body); copyErr != nil {
		return "", fmt.Errorf("can't save %v: %v", url, copyErr)
	}
	return dst.Name(), nil
}

func notify(message string) {
	_ = beeep.Notify("figures build", message, "")
}

func main() {
	b.Register(commands)
	b.BuildFromOsArgs()
	notify("all targets are done")
}
