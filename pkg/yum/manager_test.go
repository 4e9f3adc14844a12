package yum

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"yumbridge/pkg/pkgstate"
)

func TestInstallPinnedNewerGoesToInstallBucket(t *testing.T) {
	m, tool, query := newTestManager(x86Facts())
	query.script(rpmQueryCmd, rpmLine("foo", "1.0", "1", "x86_64"))
	query.script(rpmQueryCmd, rpmLine("foo", "2.0", "1", "x86_64"))

	changes, err := m.Install(context.Background(), InstallOptions{Name: "foo", Version: "2.0-1"})
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	if !reflect.DeepEqual(tool.calls, []string{"yum -y install foo-2.0-1"}) {
		t.Errorf("tool calls = %v", tool.calls)
	}

	want := pkgstate.ChangeSet{"foo": {Old: "1.0-1", New: "2.0-1"}}
	if !reflect.DeepEqual(changes, want) {
		t.Errorf("Install() changes = %v, want %v", changes, want)
	}
}

func TestInstallPinnedOlderGoesToDowngradeBucket(t *testing.T) {
	m, tool, query := newTestManager(x86Facts())
	query.script(rpmQueryCmd, rpmLine("foo", "3.0", "1", "x86_64"))
	query.script(rpmQueryCmd, rpmLine("foo", "2.0", "1", "x86_64"))

	changes, err := m.Install(context.Background(), InstallOptions{Name: "foo", Version: "2.0-1"})
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	if !reflect.DeepEqual(tool.calls, []string{"yum -y downgrade foo-2.0-1"}) {
		t.Errorf("tool calls = %v", tool.calls)
	}

	want := pkgstate.ChangeSet{"foo": {Old: "3.0-1", New: "2.0-1"}}
	if !reflect.DeepEqual(changes, want) {
		t.Errorf("Install() changes = %v, want %v", changes, want)
	}
}

func TestInstallNotInstalledPinned(t *testing.T) {
	m, tool, query := newTestManager(x86Facts())
	query.script(rpmQueryCmd, "")
	query.script(rpmQueryCmd, rpmLine("foo", "2.0", "1", "x86_64"))

	changes, err := m.Install(context.Background(), InstallOptions{Name: "foo", Version: "2.0-1"})
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	if !reflect.DeepEqual(tool.calls, []string{"yum -y install foo-2.0-1"}) {
		t.Errorf("tool calls = %v", tool.calls)
	}

	want := pkgstate.ChangeSet{"foo": {Old: "", New: "2.0-1"}}
	if !reflect.DeepEqual(changes, want) {
		t.Errorf("Install() changes = %v, want %v", changes, want)
	}
}

func TestInstallMixedBuckets(t *testing.T) {
	m, tool, query := newTestManager(x86Facts())
	query.script(rpmQueryCmd,
		rpmLine("up", "1.0", "1", "x86_64")+
			rpmLine("down", "3.0", "1", "x86_64"))
	query.script(rpmQueryCmd,
		rpmLine("up", "2.0", "1", "x86_64")+
			rpmLine("down", "2.0", "1", "x86_64"))

	_, err := m.Install(context.Background(), InstallOptions{
		Pkgs: []Target{
			{Name: "up", Version: "2.0-1"},
			{Name: "down", Version: "2.0-1"},
		},
	})
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	want := []string{
		"yum -y install up-2.0-1",
		"yum -y downgrade down-2.0-1",
	}
	if !reflect.DeepEqual(tool.calls, want) {
		t.Errorf("tool calls = %v, want %v", tool.calls, want)
	}
}

func TestInstallBareNameKeepsArchSuffix(t *testing.T) {
	m, tool, query := newTestManager(x86Facts())
	query.script(rpmQueryCmd, "")
	query.script(rpmQueryCmd, rpmLine("glibc", "2.12", "1", "i686"))

	_, err := m.Install(context.Background(), InstallOptions{Name: "glibc.i686"})
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	// Unpinned targets pass through verbatim; only pinned specs move the
	// suffix behind the version.
	if !reflect.DeepEqual(tool.calls, []string{"yum -y install glibc.i686"}) {
		t.Errorf("tool calls = %v", tool.calls)
	}
}

func TestInstallRepoAndGPGOptions(t *testing.T) {
	m, tool, query := newTestManager(x86Facts())
	query.script(rpmQueryCmd, "")
	query.script(rpmQueryCmd, rpmLine("foo", "1.0", "1", "x86_64"))

	_, err := m.Install(context.Background(), InstallOptions{
		Name:       "foo",
		SkipVerify: true,
		Repos:      RepoOptions{FromRepo: "epel-testing"},
	})
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	want := []string{"yum -y --disablerepo=* --enablerepo=epel-testing --nogpgcheck install foo"}
	if !reflect.DeepEqual(tool.calls, want) {
		t.Errorf("tool calls = %v, want %v", tool.calls, want)
	}
}

func TestInstallNoTargets(t *testing.T) {
	m, tool, query := newTestManager(x86Facts())

	changes, err := m.Install(context.Background(), InstallOptions{})
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}
	if !changes.IsEmpty() {
		t.Errorf("Install() changes = %v, want empty", changes)
	}
	if len(tool.calls) != 0 || len(query.calls) != 0 {
		t.Error("Install() without targets should not invoke anything")
	}
}

func TestInstallVersionIgnoredForMultipleTargets(t *testing.T) {
	m, tool, query := newTestManager(x86Facts())
	logger, hook := logtest.NewNullLogger()
	m.SetLogger(logger)

	query.script(rpmQueryCmd, "")
	query.script(rpmQueryCmd, rpmLine("a", "1.0", "1", "x86_64")+rpmLine("b", "1.0", "1", "x86_64"))

	_, err := m.Install(context.Background(), InstallOptions{
		Version: "9.9-9",
		Pkgs:    []Target{{Name: "a"}, {Name: "b"}},
	})
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	// The pin must not leak into the command line.
	if !reflect.DeepEqual(tool.calls, []string{"yum -y install a b"}) {
		t.Errorf("tool calls = %v", tool.calls)
	}

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && strings.Contains(entry.Message, "version pin ignored") {
			warned = true
		}
	}
	if !warned {
		t.Error("expected a warning that the version pin was ignored")
	}
}

func TestInstallSources(t *testing.T) {
	m, tool, query := newTestManager(x86Facts())
	query.script(rpmQueryCmd, "")
	query.script(rpmQueryCmd, rpmLine("foo", "1.0", "1", "x86_64"))

	_, err := m.Install(context.Background(), InstallOptions{
		Sources: []string{"/tmp/foo-1.0-1.x86_64.rpm"},
	})
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	// Source files skip version bucketing entirely.
	if !reflect.DeepEqual(tool.calls, []string{"yum -y install /tmp/foo-1.0-1.x86_64.rpm"}) {
		t.Errorf("tool calls = %v", tool.calls)
	}
}

func TestInstallFailedInvocationShowsEmptyDiff(t *testing.T) {
	m, tool, query := newTestManager(x86Facts())
	before := rpmLine("bash", "4.1.2", "15.el6", "x86_64")
	query.script(rpmQueryCmd, before)
	query.script(rpmQueryCmd, before)
	tool.fail("yum -y install foo", errors.New("exit status 1"))

	changes, err := m.Install(context.Background(), InstallOptions{Name: "foo"})
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}
	if !changes.IsEmpty() {
		t.Errorf("failed install should yield empty diff, got %v", changes)
	}
}

func TestUpgrade(t *testing.T) {
	m, tool, query := newTestManager(x86Facts())
	query.script(rpmQueryCmd, rpmLine("bash", "4.1.2", "15.el6", "x86_64"))
	query.script(rpmQueryCmd,
		rpmLine("bash", "4.1.2", "29.el6", "x86_64")+
			rpmLine("newdep", "1.0", "1.el6", "x86_64"))

	changes, err := m.Upgrade(context.Background(), false)
	if err != nil {
		t.Fatalf("Upgrade() error: %v", err)
	}

	if !reflect.DeepEqual(tool.calls, []string{"yum -q -y upgrade"}) {
		t.Errorf("tool calls = %v", tool.calls)
	}

	want := pkgstate.ChangeSet{
		"bash":   {Old: "4.1.2-15.el6", New: "4.1.2-29.el6"},
		"newdep": {Old: "", New: "1.0-1.el6"},
	}
	if !reflect.DeepEqual(changes, want) {
		t.Errorf("Upgrade() changes = %v, want %v", changes, want)
	}
}

func TestUpgradeWithRefresh(t *testing.T) {
	m, tool, query := newTestManager(x86Facts())
	query.script(rpmQueryCmd, "")
	query.script(rpmQueryCmd, "")

	if _, err := m.Upgrade(context.Background(), true); err != nil {
		t.Fatalf("Upgrade() error: %v", err)
	}

	want := []string{"yum -q clean dbcache", "yum -q -y upgrade"}
	if !reflect.DeepEqual(tool.calls, want) {
		t.Errorf("tool calls = %v, want %v", tool.calls, want)
	}
}

func TestRemove(t *testing.T) {
	m, tool, query := newTestManager(x86Facts())
	query.script(rpmQueryCmd,
		rpmLine("bash", "4.1.2", "15.el6", "x86_64")+
			rpmLine("vim", "7.4.160", "1.el6", "x86_64"))
	query.script(rpmQueryCmd, rpmLine("bash", "4.1.2", "15.el6", "x86_64"))

	removed, err := m.Remove(context.Background(), "vim")
	if err != nil {
		t.Fatalf("Remove() error: %v", err)
	}

	if !reflect.DeepEqual(tool.calls, []string{"yum -q -y remove vim"}) {
		t.Errorf("tool calls = %v", tool.calls)
	}
	if !reflect.DeepEqual(removed, []string{"vim"}) {
		t.Errorf("Remove() = %v, want [vim]", removed)
	}
}

func TestRemoveNoNames(t *testing.T) {
	m, tool, _ := newTestManager(x86Facts())

	removed, err := m.Remove(context.Background())
	if err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if len(removed) != 0 || len(tool.calls) != 0 {
		t.Error("Remove() without names should be a no-op")
	}
}

func TestPurgeIsRemove(t *testing.T) {
	m, tool, query := newTestManager(x86Facts())
	query.script(rpmQueryCmd, rpmLine("vim", "7.4.160", "1.el6", "x86_64"))
	query.script(rpmQueryCmd, "")

	removed, err := m.Purge(context.Background(), "vim")
	if err != nil {
		t.Fatalf("Purge() error: %v", err)
	}
	if !reflect.DeepEqual(tool.calls, []string{"yum -q -y remove vim"}) {
		t.Errorf("tool calls = %v", tool.calls)
	}
	if !reflect.DeepEqual(removed, []string{"vim"}) {
		t.Errorf("Purge() = %v", removed)
	}
}

func TestListUpgrades(t *testing.T) {
	m, tool, _ := newTestManager(x86Facts())
	tool.script("yum -q check-update",
		"bash.x86_64  4.1.2-29.el6  updates\nkernel.x86_64  2.6.32-504.el6  updates\n")
	// check-update exits 100 when updates exist; the listing must still
	// be used.
	tool.fail("yum -q check-update", errors.New("exit status 100"))

	upgrades, err := m.ListUpgrades(context.Background(), false)
	if err != nil {
		t.Fatalf("ListUpgrades() error: %v", err)
	}

	want := map[string]string{
		"bash":   "4.1.2-29.el6",
		"kernel": "2.6.32-504.el6",
	}
	if !reflect.DeepEqual(upgrades, want) {
		t.Errorf("ListUpgrades() = %v, want %v", upgrades, want)
	}
}

func TestListUpgradesRefreshFirst(t *testing.T) {
	m, tool, _ := newTestManager(x86Facts())

	if _, err := m.ListUpgrades(context.Background(), true); err != nil {
		t.Fatalf("ListUpgrades() error: %v", err)
	}

	want := []string{"yum -q clean dbcache", "yum -q check-update"}
	if !reflect.DeepEqual(tool.calls, want) {
		t.Errorf("tool calls = %v, want %v", tool.calls, want)
	}
}

func TestLatestVersions(t *testing.T) {
	m, tool, _ := newTestManager(x86Facts())
	tool.script("yum -q list available foo bar",
		"Loaded plugins: fastestmirror\nfoo.x86_64  2.0-1.el6  epel\n")

	latest, err := m.LatestVersions(context.Background(), RepoOptions{}, "foo", "bar")
	if err != nil {
		t.Fatalf("LatestVersions() error: %v", err)
	}

	want := map[string]string{"foo": "2.0-1.el6", "bar": ""}
	if !reflect.DeepEqual(latest, want) {
		t.Errorf("LatestVersions() = %v, want %v", latest, want)
	}
}

func TestLatestVersionsWithRepoFilter(t *testing.T) {
	m, tool, _ := newTestManager(x86Facts())

	_, err := m.LatestVersions(context.Background(), RepoOptions{FromRepo: "epel-testing"}, "foo")
	if err != nil {
		t.Fatalf("LatestVersions() error: %v", err)
	}

	want := []string{"yum -q --disablerepo=* --enablerepo=epel-testing list available foo"}
	if !reflect.DeepEqual(tool.calls, want) {
		t.Errorf("tool calls = %v, want %v", tool.calls, want)
	}
}

func TestLatestVersionsNoNames(t *testing.T) {
	m, tool, _ := newTestManager(x86Facts())

	latest, err := m.LatestVersions(context.Background(), RepoOptions{})
	if err != nil {
		t.Fatalf("LatestVersions() error: %v", err)
	}
	if len(latest) != 0 || len(tool.calls) != 0 {
		t.Error("LatestVersions() without names should be a no-op")
	}
}

func TestLatestVersionScalar(t *testing.T) {
	m, tool, _ := newTestManager(x86Facts())
	tool.script("yum -q list available vim", "vim.x86_64  7.4.160-1.el6  base\n")

	latest, err := m.LatestVersion(context.Background(), "vim")
	if err != nil {
		t.Fatalf("LatestVersion() error: %v", err)
	}
	if latest != "7.4.160-1.el6" {
		t.Errorf("LatestVersion() = %q, want 7.4.160-1.el6", latest)
	}

	latest, err = m.LatestVersion(context.Background(), "vim")
	if err != nil {
		t.Fatalf("LatestVersion() error: %v", err)
	}
	if latest != "" {
		t.Errorf("LatestVersion() with nothing available = %q, want empty", latest)
	}
}

func TestUpgradeAvailable(t *testing.T) {
	m, tool, _ := newTestManager(x86Facts())
	tool.script("yum -q list available foo", "foo.x86_64  2.0-1.el6  epel\n")

	available, err := m.UpgradeAvailable(context.Background(), "foo")
	if err != nil {
		t.Fatalf("UpgradeAvailable() error: %v", err)
	}
	if !available {
		t.Error("UpgradeAvailable() = false, want true")
	}

	// An empty listing means nothing available.
	available, err = m.UpgradeAvailable(context.Background(), "foo")
	if err != nil {
		t.Fatalf("UpgradeAvailable() error: %v", err)
	}
	if available {
		t.Error("UpgradeAvailable() = true, want false")
	}
}

func TestRefreshAlwaysSucceeds(t *testing.T) {
	m, tool, _ := newTestManager(x86Facts())
	tool.fail("yum -q clean dbcache", errors.New("exit status 1"))

	if err := m.Refresh(context.Background()); err != nil {
		t.Errorf("Refresh() = %v, want nil", err)
	}
}
