package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_TotalOnBadInput(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"no separator", "1108"},
		{"non numeric tag", "abc|g,1"},
		{"unknown tag", "9999|g,1"},
		{"missing fields", "1106|g"},
		{"non numeric field", "1106|g,xyz"},
		{"trailing garbage in int list", "1101|g,1 2 x,3 4,5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, Decode(tc.line))
		})
	}
}

func TestDecode_Version(t *testing.T) {
	msg := Decode("1000|2000,2.0.00,JM20250101,;6pl;sb;")
	require.NotNil(t, msg)
	v, ok := msg.(*Version)
	require.True(t, ok)
	assert.Equal(t, 2000, v.Number)
	assert.Equal(t, "2.0.00", v.VersText)
	assert.Equal(t, "JM20250101", v.Build)
	assert.Equal(t, ";6pl;sb;", v.Features)

	// Old servers do not send the features field.
	msg = Decode("1000|1201,1.2.01,OLDBUILD")
	require.NotNil(t, msg)
	assert.Equal(t, "", msg.(*Version).Features)
}

func TestDecode_StatusKeepsCommasInText(t *testing.T) {
	msg := Decode("1001|1,Nickname taken, try another")
	require.NotNil(t, msg)
	st := msg.(*Status)
	assert.Equal(t, StatusNotOK, st.Value)
	assert.Equal(t, "Nickname taken, try another", st.Text)
}

func TestDecode_Turn(t *testing.T) {
	msg := Decode("1108|seaside,2")
	require.NotNil(t, msg)
	turn := msg.(*Turn)
	assert.Equal(t, "seaside", turn.GameName())
	assert.Equal(t, 2, turn.PlayerNumber)
	assert.Equal(t, 0, turn.State)

	msg = Decode("1108|seaside,2,15")
	require.NotNil(t, msg)
	assert.Equal(t, 15, msg.(*Turn).State)
}

func TestDecode_BoardLayout2(t *testing.T) {
	msg := Decode("1102|seaside,3,HL=1 2 3 4,NL=5 9 11,RH=2312,PH=-1,ZZ=7 8")
	require.NotNil(t, msg)
	bl := msg.(*BoardLayout2)
	assert.Equal(t, 3, bl.Encoding)
	assert.Equal(t, []int{1, 2, 3, 4}, bl.IntArrayPart(PartHexLayout))
	assert.Equal(t, []int{5, 9, 11}, bl.IntArrayPart(PartNumberLayout))
	assert.Equal(t, 2312, bl.IntPart(PartRobberHex))
	assert.Equal(t, -1, bl.IntPart(PartPirateHex))
	assert.Equal(t, []int{7, 8}, bl.IntArrayPart("ZZ"), "unknown parts survive")

	assert.Nil(t, Decode("1102|seaside,3,HL1 2 3"), "part without = is malformed")
	assert.Nil(t, Decode("1102|seaside,3,HL=1 2 x"), "non numeric part value")
}

func TestDecode_PlayerElement(t *testing.T) {
	msg := Decode("1112|seaside,1,101,2,3")
	require.NotNil(t, msg)
	pe := msg.(*PlayerElement)
	assert.Equal(t, 1, pe.PlayerNumber)
	assert.Equal(t, ActionGain, pe.Action)
	assert.Equal(t, ElemOre, pe.ElementType)
	assert.Equal(t, 3, pe.Amount)
}

func TestDecode_PlayerElements(t *testing.T) {
	msg := Decode("1113|seaside,1,102,1,1,2,1,4,2")
	require.NotNil(t, msg)
	pes := msg.(*PlayerElements)
	assert.Equal(t, ActionLose, pes.Action)
	require.Len(t, pes.Elements, 3)
	assert.Equal(t, ElementAmount{ElementType: ElemWheat, Amount: 2}, pes.Elements[2])

	assert.Nil(t, Decode("1113|seaside,1,102"), "needs at least one pair")
	assert.Nil(t, Decode("1113|seaside,1,102,1,1,2"), "odd field count")
}

func TestDecode_MakeOffer(t *testing.T) {
	msg := Decode("1121|seaside,0,0 1 1 0,1 0 0 0 0,0 0 0 1 0")
	require.NotNil(t, msg)
	offer := msg.(*MakeOffer)
	assert.Equal(t, 0, offer.From)
	assert.Equal(t, []bool{false, true, true, false}, offer.To)
	assert.Equal(t, []int{1, 0, 0, 0, 0}, offer.Give)
	assert.Equal(t, []int{0, 0, 0, 1, 0}, offer.Get)

	assert.Nil(t, Decode("1121|seaside,0,0 1,1 0 0,0 0 0 1 0"), "give must list all five types")
}

func TestDecode_ChoosePlayerRequest(t *testing.T) {
	msg := Decode("1120|seaside,0 1 1 0 1")
	require.NotNil(t, msg)
	assert.Equal(t, []bool{false, true, true, false, true}, msg.(*ChoosePlayerRequest).Choices)

	assert.Nil(t, Decode("1120|seaside,"), "empty choice list")
}

func TestDecode_GameOptionInfoEndOfList(t *testing.T) {
	msg := Decode("1202|-,0,2000,t,-")
	require.NotNil(t, msg)
	assert.True(t, msg.(*GameOptionInfo).IsEndOfList())

	msg = Decode("1202|SC,5,2000,SC_FOG,Scenario to play")
	require.NotNil(t, msg)
	info := msg.(*GameOptionInfo)
	assert.False(t, info.IsEndOfList())
	assert.Equal(t, OptTypeStr, info.OptType)
	assert.Equal(t, "SC_FOG", info.DefaultValue)
}

func TestDecode_ScenarioInfo(t *testing.T) {
	msg := Decode("1203|-")
	require.NotNil(t, msg)
	assert.True(t, msg.(*ScenarioInfo).NoMoreScens)

	msg = Decode("1203|SC_FOG,0,2000,Fog islands")
	require.NotNil(t, msg)
	sc := msg.(*ScenarioInfo)
	assert.False(t, sc.IsUnknown)
	assert.Equal(t, 2000, sc.MinVersion)
	assert.Equal(t, "Fog islands", sc.Desc)
}

func TestCommands_RoundTrip(t *testing.T) {
	ping := &ServerPing{SleepTime: 42}
	decoded := Decode(ping.Command())
	require.NotNil(t, decoded)
	assert.Equal(t, ping, decoded)

	face := &ChangeFace{Game: "seaside", PlayerNumber: 2, FaceID: 7}
	decoded = Decode(face.Command())
	require.NotNil(t, decoded)
	assert.Equal(t, face, decoded)

	vers := &Version{Number: 2000, VersText: "2.0.00", Build: "B1", Features: ";sb;"}
	decoded = Decode(vers.Command())
	require.NotNil(t, decoded)
	assert.Equal(t, vers, decoded)
}

func TestGameOptionGetInfos_Command(t *testing.T) {
	req := &GameOptionGetInfos{Keys: []string{"SC", "PLB"}, WantsI18n: true}
	assert.Equal(t, "1201|SC PLB,1", req.Command())

	// No keys means "everything newer than my version".
	req = &GameOptionGetInfos{}
	assert.Equal(t, "1201|-,0", req.Command())
}

func TestDecode_MoveRobberPirate(t *testing.T) {
	msg := Decode("1117|seaside,1,-2312")
	require.NotNil(t, msg)
	assert.Equal(t, -2312, msg.(*MoveRobber).Coordinates)
}
