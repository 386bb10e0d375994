package tables

import "testing"

func TestSelfCheck(t *testing.T) {
	if err := SelfCheck(); err != nil {
		t.Fatalf("SelfCheck reported mismatches: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	for m := 0; m < BoardPositions; m++ {
		d := decode(m)
		if got := encode(d); got != m {
			t.Fatalf("encode(decode(%d)) = %d", m, got)
		}
	}
}

func TestXWonTopRow(t *testing.T) {
	// X on cells {0,1,2}: encoding = 1 + 3 + 9 = 13.
	m := int(Pow3[0]) + int(Pow3[1])*1 + int(Pow3[2])*1
	if StateOf[m] != XWon {
		t.Fatalf("StateOf[%d] = %v, want XWon", m, StateOf[m])
	}
	if EmptyMask[m] != 0b111111000 {
		t.Fatalf("EmptyMask[%d] = %b, want %b", m, EmptyMask[m], 0b111111000)
	}
	if EmptyCount[m] != 6 {
		t.Fatalf("EmptyCount[%d] = %d, want 6", m, EmptyCount[m])
	}
}

func TestEmptyBoardUndecided(t *testing.T) {
	if StateOf[0] != Undecided {
		t.Fatalf("StateOf[0] = %v, want Undecided", StateOf[0])
	}
	if EmptyCount[0] != 9 {
		t.Fatalf("EmptyCount[0] = %d, want 9", EmptyCount[0])
	}
}

func TestFullDrawBoard(t *testing.T) {
	// Full board X O X / O O X / X X O (row-major): none of the 8 lines
	// completes, so the board is drawn.
	d := [9]uint8{1, 2, 1, 2, 2, 1, 1, 1, 2}
	m := encode(d)
	if StateOf[m] != Drawn {
		t.Fatalf("StateOf[%d] = %v, want Drawn (digits %v)", m, StateOf[m], d)
	}
}

func TestOuterInnerFormulas(t *testing.T) {
	// move 0 -> row 0 col 0 -> outer 0 inner 0
	if Outer[0] != 0 || Inner[0] != 0 {
		t.Fatalf("move 0: outer=%d inner=%d, want 0,0", Outer[0], Inner[0])
	}
	// move 40 -> row 4 col 4 -> outer (4/3)*3+4/3=1*3+1=4, inner (4%3)*3+4%3=1*3+1=4
	if Outer[40] != 4 || Inner[40] != 4 {
		t.Fatalf("move 40: outer=%d inner=%d, want 4,4", Outer[40], Inner[40])
	}
	// move 80 -> row 8 col 8 -> outer 8 inner 8
	if Outer[80] != 8 || Inner[80] != 8 {
		t.Fatalf("move 80: outer=%d inner=%d, want 8,8", Outer[80], Inner[80])
	}
}

func TestMoveFromGridBitRoundTrip(t *testing.T) {
	for mv := 0; mv < 81; mv++ {
		gridBit := 9*int(Outer[mv]) + int(Inner[mv])
		if int(MoveFromGridBit[gridBit]) != mv {
			t.Fatalf("MoveFromGridBit[%d] = %d, want %d", gridBit, MoveFromGridBit[gridBit], mv)
		}
	}
}

func TestNthSetBit9(t *testing.T) {
	mask := 0b101010101 // bits 0,2,4,6,8 set
	for k, want := range []int8{0, 2, 4, 6, 8} {
		if NthSetBit9[mask][k] != want {
			t.Fatalf("NthSetBit9[%b][%d] = %d, want %d", mask, k, NthSetBit9[mask][k], want)
		}
	}
	if NthSetBit9[mask][5] != -1 {
		t.Fatalf("NthSetBit9[%b][5] = %d, want -1", mask, NthSetBit9[mask][5])
	}
}

func TestLog2Floor32(t *testing.T) {
	cases := map[uint32]uint8{1: 0, 2: 1, 3: 1, 4: 2, 1023: 9, 1024: 10, 1 << 20: 20}
	for n, want := range cases {
		if got := Log2Floor32(n); got != want {
			t.Fatalf("Log2Floor32(%d) = %d, want %d", n, got, want)
		}
	}
}
