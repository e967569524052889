package actions

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/argspec/internal/dispatchers"
	"github.com/footprint-tools/argspec/internal/domain"
	"github.com/footprint-tools/argspec/pkg/argspec"
)

const (
	demoVerbose argspec.Flag = iota
	demoHaveDest
	demoSize
	demoGamma
	demoScaleXYZ
	demoHelp
)

var colourTokens = []string{"red", "green", "blue", "black"}

const colourBlack = 3

// demoHelpTypes mirrors argspec.HelpTypes with the short "md" token.
var demoHelpTypes = []argspec.EnumValue{
	{Token: "brief", Value: int(argspec.HelpBrief)},
	{Token: "full", Value: int(argspec.HelpFull)},
	{Token: "html", Value: int(argspec.HelpHTML)},
	{Token: "md", Value: int(argspec.HelpMarkdown)},
}

type demoValues struct {
	name        string
	destination string
	size        int
	gamma       float64
	cats        bool
	latitude    float32
	longitude   float32
	julianDay   int
	colour      int
	v2          [2]float32
	v3          [3]float32
	v4          [4]float32
	scale       [3]float32
	counts      []int
	words       []string
	v3s         [][3]float32
	colours     []int
	helpType    int
}

func newDemoValues() *demoValues {
	return &demoValues{
		destination: "/dev/null",
		size:        100,
		gamma:       2.2,
		julianDay:   1,
		colour:      colourBlack,
		counts:      []int{1, 2, 3},
		helpType:    int(argspec.HelpFull),
	}
}

func newDemoSpec(v *demoValues) *argspec.Spec {
	return argspec.NewBuilder("Provides an example of argspec usage").
		EnumTokens("colour", colourTokens...).
		Enum("helpType", demoHelpTypes...).
		Line("<name:string> [<dst:cstr>^]", "Specify name and optionally destination for display",
			argspec.String(&v.name), argspec.String(&v.destination), demoHaveDest).
		Line("-v^", "Set verbose mode", demoVerbose).
		Line("-size^ %d", "Set image/window size", demoSize, argspec.Int(&v.size)).
		Line("-gamma^ <gamma:double>", "Set gamma correction (default: 2.2)", demoGamma, argspec.Double(&v.gamma)).
		Line("-cats <bool>", "Whether cats are enabled (default: false)", argspec.Bool(&v.cats)).
		Line("-latlong <latitude:float> <longitude:float>", "Set latitude and longitude",
			argspec.Float(&v.latitude), argspec.Float(&v.longitude)).
		Line("-day <day:int>", "Set Julian day (1..365)", argspec.Int(&v.julianDay)).
		Line("-colour <colour>", "Set colour", argspec.Enum(&v.colour)).
		Line("-v2 <vec2>", "Set v2", argspec.Vec2(&v.v2)).
		Line("-v3 <vec3>", "Set v3", argspec.Vec3(&v.v3)).
		Line("-v4 <vec4>", "Set v4", argspec.Vec4(&v.v4)).
		Line("-scale %f [%f %f^]", "Set uniform or xyz scale",
			argspec.Float(&v.scale[0]), argspec.Float(&v.scale[1]), argspec.Float(&v.scale[2]), demoScaleXYZ).
		Line("-counts <count1:int> ...", "Specify counts using repeated arguments", argspec.Ints(&v.counts)).
		Line("-countArray <counts:int[]>", "Specify counts as explicit, quoted array", argspec.Ints(&v.counts)).
		Line("-words <name1:cstring> ...", "Specify words", argspec.Strings(&v.words)).
		Line("-v3s <vec3> ...", "Specify v3s", argspec.Vec3s(&v.v3s)).
		Line("-colours <colour> ...", "Specify colours", argspec.Enums(&v.colours)).
		Line("-h^ [<helpType>]", "Show full help, or help of the given type", demoHelp, argspec.Enum(&v.helpType)).
		MustBuild()
}

// DemoSpec describes the demo command's arguments.
func DemoSpec() *argspec.Spec { return newDemoSpec(newDemoValues()) }

// Demo returns the demo command, a tour of every argument kind.
func Demo(a *domain.Application) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return demo(args, flags, newDeps(a))
	}
}

func demo(args []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	v := newDemoValues()
	spec := newDemoSpec(v)

	ss, done, err := parseArgs(spec, "argspec demo", args, deps)
	if done || err != nil {
		return err
	}

	if ss.Flag(demoHelp) {
		_, _ = deps.Printf("%s\n", spec.Help("argspec demo", argspec.HelpType(v.helpType)))
		return nil
	}

	if !ss.Flag(demoScaleXYZ) {
		v.scale[1], v.scale[2] = v.scale[0], v.scale[0]
	}

	_, _ = deps.Printf("%s", formatDemo(ss, v, deps.Styler))
	return nil
}

func formatDemo(ss *argspec.Session, v *demoValues, st domain.Styler) string {
	var b strings.Builder

	b.WriteString("\n" + st.Header("flags:") + "\n")
	for _, f := range []struct {
		flag argspec.Flag
		name string
	}{
		{demoVerbose, "verbose"},
		{demoHaveDest, "dest"},
		{demoSize, "size"},
		{demoGamma, "gamma"},
	} {
		if ss.Flag(f.flag) {
			b.WriteString(f.name + "\n")
		}
	}

	cats := "NO"
	if v.cats {
		cats = "YES"
	}

	b.WriteString("\n" + st.Header("values:") + "\n")
	fmt.Fprintf(&b, "Name       : %s\n", v.name)
	fmt.Fprintf(&b, "Destination: %s\n", v.destination)
	fmt.Fprintf(&b, "Size       : %d\n", v.size)
	fmt.Fprintf(&b, "Gamma      : %g\n", v.gamma)
	fmt.Fprintf(&b, "Cats       : %s\n", cats)
	fmt.Fprintf(&b, "Lat/Long   : %g, %g\n", v.latitude, v.longitude)
	fmt.Fprintf(&b, "JulianDay  : %d\n", v.julianDay)
	fmt.Fprintf(&b, "Colour     : %s\n", colourTokens[v.colour])
	fmt.Fprintf(&b, "V2         : %f %f\n", v.v2[0], v.v2[1])
	fmt.Fprintf(&b, "V3         : %f %f %f\n", v.v3[0], v.v3[1], v.v3[2])
	fmt.Fprintf(&b, "V4         : %f %f %f %f\n", v.v4[0], v.v4[1], v.v4[2], v.v4[3])
	fmt.Fprintf(&b, "ScaleXYZ   : %f %f %f\n", v.scale[0], v.scale[1], v.scale[2])

	if len(v.counts) > 0 {
		b.WriteString("Counts     :")
		for _, c := range v.counts {
			fmt.Fprintf(&b, " %d", c)
		}
		b.WriteString("\n")
	}
	if len(v.words) > 0 {
		b.WriteString("Words      :")
		for _, w := range v.words {
			fmt.Fprintf(&b, " '%s'", w)
		}
		b.WriteString("\n")
	}
	if len(v.colours) > 0 {
		b.WriteString("Colours    :")
		for _, c := range v.colours {
			fmt.Fprintf(&b, " '%s'", colourTokens[c])
		}
		b.WriteString("\n")
	}
	if len(v.v3s) > 0 {
		b.WriteString("V3s        :")
		for _, p := range v.v3s {
			fmt.Fprintf(&b, " [%f %f %f]", p[0], p[1], p[2])
		}
		b.WriteString("\n")
	}
	return b.String()
}
