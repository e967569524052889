package argspec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	flagDest Flag = iota
	flagSize
	flagHelp
	flagScale
	flagVerbose
)

type demoArgs struct {
	name    string
	dst     string
	size    int
	gamma   float64
	lat     float32
	long    float32
	colour  int
	v3      [3]float32
	scale   [3]float32
	words   []string
	counts  []int
	colours []int
	v3s     [][3]float32
	help    int
}

func newDemoSpec(t *testing.T) (*Spec, *demoArgs) {
	t.Helper()

	a := &demoArgs{}
	spec, err := NewBuilder("Provides an example").
		EnumTokens("colour", "red", "green", "blue").
		Enum("helpType", HelpTypes...).
		Line("<name:string> [<dst:cstring>^]", "Name and optional destination",
			String(&a.name), String(&a.dst), flagDest).
		Line("-v^", "Verbose", flagVerbose).
		Line("-size^ %d", "Set size", flagSize, Int(&a.size)).
		Line("-gamma <gamma:double>", "Set gamma", Double(&a.gamma)).
		Line("-latlong <latitude:float> <longitude:float>", "Set location",
			Float(&a.lat), Float(&a.long)).
		Line("-colour <colour>", "Set colour", Enum(&a.colour)).
		Line("-v3 <vec3>", "Set vector", Vec3(&a.v3)).
		Line("-scale %f [%f %f^]", "Scale", Float(&a.scale[0]), Float(&a.scale[1]), Float(&a.scale[2]), flagScale).
		Line("-words <w:cstring> ...", "Words", Strings(&a.words)).
		Line("-countArray <counts:int[]>", "Counts", Ints(&a.counts)).
		Line("-colours <colour> ...", "Colours", Enums(&a.colours)).
		Line("-v3s <vec3> ...", "Vectors", Vec3s(&a.v3s)).
		Line("-h^ [<helpType>]", "Help", flagHelp, Enum(&a.help)).
		Build()
	require.NoError(t, err)
	return spec, a
}

func TestParse_RequiredOptionalBoundary(t *testing.T) {
	spec, a := newDemoSpec(t)

	ss, err := spec.Parse([]string{"cmd", "alice"})
	require.NoError(t, err)
	require.Equal(t, "alice", a.name)
	require.False(t, ss.Flag(flagDest))

	ss, err = spec.Parse([]string{"cmd", "alice", "/tmp/out"})
	require.NoError(t, err)
	require.Equal(t, "/tmp/out", a.dst)
	require.True(t, ss.Flag(flagDest))

	ss, err = spec.Parse([]string{"cmd"})
	require.Equal(t, ErrHelpRequested, KindOf(err))
	require.True(t, IsHelp(err))
	require.True(t, ss.HelpRequested())
	require.Contains(t, ss.Message(), "Usage:")
	require.Contains(t, ss.Message(), "cmd [options] <name:string> [<dst:string>]")
}

func TestParse_Scalars(t *testing.T) {
	spec, a := newDemoSpec(t)

	ss, err := spec.Parse([]string{"cmd", "-size", "0x10", "bob", "-gamma", "2.2", "-latlong", "-33.8", "151.2", "-colour", "GREEN"})
	require.NoError(t, err)
	require.Equal(t, "bob", a.name)
	require.Equal(t, 16, a.size)
	require.InDelta(t, 2.2, a.gamma, 1e-12)
	require.InDelta(t, -33.8, a.lat, 1e-5)
	require.InDelta(t, 151.2, a.long, 1e-4)
	require.Equal(t, 1, a.colour)
	require.True(t, ss.Flag(flagSize))
	require.False(t, ss.Flag(flagVerbose))
}

func TestParse_Garbage(t *testing.T) {
	spec, a := newDemoSpec(t)

	ss, err := spec.Parse([]string{"cmd", "bob", "-size", "12abc"})
	require.Equal(t, ErrGarbage, KindOf(err))
	require.Equal(t, "Garbage at end of number: '12abc' in -size", ss.Message())
	require.True(t, ss.Flag(flagSize))

	_, err = spec.Parse([]string{"cmd", "bob", "-gamma", "1.5x"})
	require.Equal(t, ErrGarbage, KindOf(err))

	ss, err = spec.Parse([]string{"cmd", "bob", "-size", "1_000"})
	require.Equal(t, ErrGarbage, KindOf(err))
	require.Equal(t, "Garbage at end of number: '1_000' in -size", ss.Message())

	_, err = spec.Parse([]string{"cmd", "bob", "-size", "12"})
	require.NoError(t, err)
	require.Equal(t, 12, a.size)
}

func TestParse_BadEnum(t *testing.T) {
	spec, _ := newDemoSpec(t)

	ss, err := spec.Parse([]string{"cmd", "bob", "-colour", "purple"})
	require.Equal(t, ErrBadEnum, KindOf(err))
	require.Equal(t, "Unknown enum 'purple' of type colour in -colour", ss.Message())
}

func TestParse_VectorBroadcast(t *testing.T) {
	spec, a := newDemoSpec(t)

	_, err := spec.Parse([]string{"cmd", "bob", "-v3", "2.0"})
	require.NoError(t, err)
	require.Equal(t, [3]float32{2, 2, 2}, a.v3)

	_, err = spec.Parse([]string{"cmd", "bob", "-v3", "1.0", "2.0", "3.0"})
	require.NoError(t, err)
	require.Equal(t, [3]float32{1, 2, 3}, a.v3)

	_, err = spec.Parse([]string{"cmd", "bob", "-v3", "5", "-v"})
	require.NoError(t, err)
	require.Equal(t, [3]float32{5, 5, 5}, a.v3)

	// two of three zero-fills the rest
	_, err = spec.Parse([]string{"cmd", "bob", "-v3", "1", "2"})
	require.NoError(t, err)
	require.Equal(t, [3]float32{1, 2, 0}, a.v3)
}

func TestParseVec_NoTokensBeforeOption(t *testing.T) {
	c := &cursor{args: []string{"-next"}}
	v, err := parseVec(3, c)
	require.Nil(t, err)
	require.Equal(t, [4]float32{}, v)
	require.Equal(t, 0, c.pos)
}

func TestParse_ListArray(t *testing.T) {
	spec, a := newDemoSpec(t)
	a.words = []string{"stale"}

	_, err := spec.Parse([]string{"cmd", "bob", "-words", "a", "b", "c"})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, a.words)

	_, err = spec.Parse([]string{"cmd", "-words", "x", "y", "-v", "bob"})
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, a.words)
	require.Equal(t, "bob", a.name)

	_, err = spec.Parse([]string{"cmd", "bob", "-colours", "red", "Blue"})
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, a.colours)

	_, err = spec.Parse([]string{"cmd", "bob", "-v3s", "1", "2", "3", "4", "5", "6", "7"})
	require.NoError(t, err)
	require.Equal(t, [][3]float32{{1, 2, 3}, {4, 5, 6}, {7, 7, 7}}, a.v3s)
}

func TestParse_SplitArray(t *testing.T) {
	spec, a := newDemoSpec(t)
	a.counts = []int{99}

	_, err := spec.Parse([]string{"cmd", "bob", "-countArray", "1 2\t3"})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, a.counts)

	_, err = spec.Parse([]string{"cmd", "bob", "-countArray", "1 x"})
	require.Equal(t, ErrGarbage, KindOf(err))
}

func TestParse_SplitVectorIgnoresDashes(t *testing.T) {
	var vs [][2]float32

	spec, err := NewBuilder("").Line("<v2[]>", "", Vec2s(&vs)).Build()
	require.NoError(t, err)

	_, err = spec.Parse([]string{"cmd", "-1 -2 3"})
	require.NoError(t, err)
	require.Equal(t, [][2]float32{{-1, -2}, {3, 3}}, vs)
}

func TestParse_SliceTargets(t *testing.T) {
	var (
		bs []bool
		fs []float32
		ds []float64
		vs [][4]float32
	)

	spec, err := NewBuilder("").
		Line("-bools <bool[]>", "", Bools(&bs)).
		Line("-floats <float> ...", "", Floats(&fs)).
		Line("-doubles <double[]>", "", Doubles(&ds)).
		Line("-quads <vec4> ...", "", Vec4s(&vs)).
		Build()
	require.NoError(t, err)

	_, err = spec.Parse([]string{"cmd", "-bools", "true off", "-floats", "1.5", "2",
		"-doubles", "0.25", "-quads", "1", "2", "3", "4", "5"})
	require.NoError(t, err)
	require.Equal(t, []bool{true, false}, bs)
	require.Equal(t, []float32{1.5, 2}, fs)
	require.Equal(t, []float64{0.25}, ds)
	require.Equal(t, [][4]float32{{1, 2, 3, 4}, {5, 5, 5, 5}}, vs)
}

func TestParse_TooManyNotEnough(t *testing.T) {
	var a, b int

	spec, err := NewBuilder("").Line("<a:int> <b:int>", "", Int(&a), Int(&b)).Build()
	require.NoError(t, err)

	ss, err := spec.Parse([]string{"cmd", "1", "2", "3"})
	require.Equal(t, ErrTooManyArgs, KindOf(err))
	require.Equal(t, "Too many main arguments (expecting at most 2)", ss.Message())

	ss, err = spec.Parse([]string{"cmd", "1"})
	require.Equal(t, ErrNotEnoughArgs, KindOf(err))
	require.Equal(t, "Not enough main arguments: expecting at least 1 more", ss.Message())
}

func TestParse_OptionNotEnough(t *testing.T) {
	spec, _ := newDemoSpec(t)

	ss, err := spec.Parse([]string{"cmd", "bob", "-latlong", "1"})
	require.Equal(t, ErrNotEnoughArgs, KindOf(err))
	require.Equal(t, "Not enough arguments: expecting at least 1 more in -latlong", ss.Message())

	ss, err = spec.Parse([]string{"cmd", "bob", "-latlong", "-v"})
	require.Equal(t, ErrNotEnoughArgs, KindOf(err))
	require.Equal(t, "Not enough arguments: expecting at least 2 more in -latlong", ss.Message())
}

func TestParse_OptionalTrailingInOption(t *testing.T) {
	spec, a := newDemoSpec(t)

	ss, err := spec.Parse([]string{"cmd", "bob", "-scale", "2"})
	require.NoError(t, err)
	require.Equal(t, float32(2), a.scale[0])
	require.False(t, ss.Flag(flagScale))

	ss, err = spec.Parse([]string{"cmd", "bob", "-scale", "2", "3", "4"})
	require.NoError(t, err)
	require.Equal(t, [3]float32{2, 3, 4}, a.scale)
	require.True(t, ss.Flag(flagScale))
}

func TestParse_UnknownOption(t *testing.T) {
	spec, _ := newDemoSpec(t)

	ss, err := spec.Parse([]string{"cmd", "bob", "-nope"})
	require.Equal(t, ErrUnknownOption, KindOf(err))
	require.Equal(t, "Unknown option 'nope'", ss.Message())

	ss, err = spec.Parse([]string{"cmd", "bob", "--SIZE", "3"})
	require.NoError(t, err)
	require.True(t, ss.Flag(flagSize))
}

func TestParse_DeclaredHelp(t *testing.T) {
	spec, a := newDemoSpec(t)

	ss, err := spec.Parse([]string{"cmd", "-h", "markdown"})
	require.NoError(t, err)
	require.True(t, ss.HelpRequested())
	require.True(t, ss.Flag(flagHelp))
	require.Equal(t, int(HelpMarkdown), a.help)

	// an unknown option after -h is swallowed
	ss, err = spec.Parse([]string{"cmd", "-h", "-bogus"})
	require.Equal(t, ErrHelpRequested, KindOf(err))
	require.Contains(t, ss.Message(), "Options:")
}

func TestParse_UndeclaredHelp(t *testing.T) {
	var name string

	spec, err := NewBuilder("Says hello").Line("<name:string>", "", String(&name)).Build()
	require.NoError(t, err)

	ss, err := spec.Parse([]string{"hello", "-h"})
	require.Equal(t, ErrHelpRequested, KindOf(err))
	require.True(t, ss.HelpRequested())
	require.Equal(t, spec.Help("hello", HelpFull), ss.Message())
}

func TestParse_DoubleDashTerminator(t *testing.T) {
	spec, a := newDemoSpec(t)

	_, err := spec.Parse([]string{"cmd", "-words", "a", "b", "--", "bob"})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, a.words)
	require.Equal(t, "bob", a.name)
}

func TestParse_NegativeNumbersArePositional(t *testing.T) {
	var n int
	var f float32

	spec, err := NewBuilder("").Line("<n:int> <f:float>", "", Int(&n), Float(&f)).Build()
	require.NoError(t, err)

	_, err = spec.Parse([]string{"cmd", "-3", "-.5"})
	require.NoError(t, err)
	require.Equal(t, -3, n)
	require.Equal(t, float32(-0.5), f)
}

func TestParse_BadSpecSlot(t *testing.T) {
	var s string

	spec, err := NewBuilder("").Line("<s:thing>", "", String(&s)).Build()
	require.Equal(t, ErrUnknownType, KindOf(err))

	_, err = spec.Parse([]string{"cmd", "x"})
	require.Equal(t, ErrBadSpec, KindOf(err))
}

func TestParse_IdempotentReuse(t *testing.T) {
	spec, a := newDemoSpec(t)

	first, err := spec.Parse([]string{"cmd", "alice", "/tmp/out", "-size", "3"})
	require.NoError(t, err)
	require.True(t, first.Flag(flagDest))

	ss := spec.NewSession()
	require.Equal(t, ErrUnknownOption, KindOf(ss.Parse([]string{"cmd", "bob", "-x"})))
	require.NotEmpty(t, ss.Message())

	require.NoError(t, ss.Parse([]string{"cmd", "carol"}))
	require.Equal(t, "carol", a.name)
	require.Equal(t, uint32(0), ss.Flags())
	require.Empty(t, ss.Message())
	require.False(t, ss.HelpRequested())

	require.True(t, first.Flag(flagDest))
	require.True(t, first.Flag(flagSize))
}

func TestSession_SetFlag(t *testing.T) {
	spec, _ := newDemoSpec(t)
	ss := spec.NewSession()

	ss.SetFlag(flagVerbose)
	ss.SetFlag(MaxFlags)
	require.True(t, ss.Flag(flagVerbose))
	require.False(t, ss.Flag(MaxFlags))
	require.Equal(t, uint32(1)<<uint(flagVerbose), ss.Flags())
}

func TestParse_AnyTargets(t *testing.T) {
	var name, size, words, pos any

	spec, err := NewBuilder("").
		Line("<name:string>", "", Any(&name)).
		Line("-size %d", "", Any(&size)).
		Line("-words <cstr> ...", "", Any(&words)).
		Line("-pos <vec2>", "", Any(&pos)).
		Build()
	require.NoError(t, err)

	_, err = spec.Parse([]string{"cmd", "x", "-size", "4", "-words", "a", "b", "-pos", "1", "2"})
	require.NoError(t, err)
	require.Equal(t, "x", name)
	require.Equal(t, 4, size)
	require.Equal(t, []string{"a", "b"}, words)
	require.Equal(t, [2]float32{1, 2}, pos)
}

func TestParse_Discard(t *testing.T) {
	spec, err := NewBuilder("").Line("<a:int> <b:vec3>", "", Discard(), Discard()).Build()
	require.NoError(t, err)

	_, err = spec.Parse([]string{"cmd", "1", "2"})
	require.NoError(t, err)

	_, err = spec.Parse([]string{"cmd", "1x"})
	require.Equal(t, ErrGarbage, KindOf(err))
}
