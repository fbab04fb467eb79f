package question

// Swedish curriculum-based question catalog (Matematik 5000 A-C and
// university level). English text rides alongside for the bilingual UI.

var levelAQuestions = []Question{
	{
		ID:         "a_01",
		Question:   "Lös ekvationen: x + 7 = 15",
		QuestionEn: "Solve the equation: x + 7 = 15",
		Answer:     "8",
		Type:       TypeAlgebra,
		Level:      LevelA,
		Hint:       "Subtrahera 7 från båda sidor",
	},
	{
		ID:         "a_02",
		Question:   "Lös ekvationen: 3x = 21",
		QuestionEn: "Solve the equation: 3x = 21",
		Answer:     "7",
		Type:       TypeAlgebra,
		Level:      LevelA,
		Hint:       "Dela båda sidor med 3",
	},
	{
		ID:         "a_03",
		Question:   "Förenkla: 2x + 5x",
		QuestionEn: "Simplify: 2x + 5x",
		Answer:     "7x",
		Type:       TypeAlgebra,
		Level:      LevelA,
	},
	{
		ID:         "a_04",
		Question:   "Lös ekvationen: x - 12 = 8",
		QuestionEn: "Solve: x - 12 = 8",
		Answer:     "20",
		Type:       TypeAlgebra,
		Level:      LevelA,
	},
	{
		ID:         "a_05",
		Question:   "Beräkna arean av en rektangel med längd 8 cm och bredd 5 cm (i cm²)",
		QuestionEn: "Calculate the area of a rectangle with length 8 cm and width 5 cm (in cm²)",
		Answer:     "40",
		Type:       TypeGeometry,
		Level:      LevelA,
	},
	{
		ID:         "a_06",
		Question:   "En triangel har bas 10 cm och höjd 6 cm. Vad är arean? (i cm²)",
		QuestionEn: "A triangle has base 10 cm and height 6 cm. What is the area? (in cm²)",
		Answer:     "30",
		Type:       TypeGeometry,
		Level:      LevelA,
		Hint:       "Area = (bas × höjd) / 2",
	},
	{
		ID:         "a_07",
		Question:   "Omkretsen av en kvadrat är 24 cm. Vad är sidan? (i cm)",
		QuestionEn: "The perimeter of a square is 24 cm. What is the side? (in cm)",
		Answer:     "6",
		Type:       TypeGeometry,
		Level:      LevelA,
	},
	{
		ID:         "a_08",
		Question:   "Beräkna: 15 + 28",
		QuestionEn: "Calculate: 15 + 28",
		Answer:     "43",
		Type:       TypeQuickMath,
		Level:      LevelA,
	},
	{
		ID:         "a_09",
		Question:   "Vad är 20% av 150?",
		QuestionEn: "What is 20% of 150?",
		Answer:     "30",
		Type:       TypeQuickMath,
		Level:      LevelA,
	},
}

var levelBQuestions = []Question{
	{
		ID:         "b_01",
		Question:   "Lös ekvationen: 2x + 5 = 17",
		QuestionEn: "Solve: 2x + 5 = 17",
		Answer:     "6",
		Type:       TypeAlgebra,
		Level:      LevelB,
	},
	{
		ID:         "b_02",
		Question:   "Lös ekvationen: 5(x - 3) = 20",
		QuestionEn: "Solve: 5(x - 3) = 20",
		Answer:     "7",
		Type:       TypeAlgebra,
		Level:      LevelB,
	},
	{
		ID:         "b_03",
		Question:   "Förenkla: (x + 3)(x + 2). Vilket värde har koefficienten för x?",
		QuestionEn: "Expand: (x + 3)(x + 2). What is the coefficient of x?",
		Answer:     "5",
		Type:       TypeAlgebra,
		Level:      LevelB,
		Hint:       "x² + 5x + 6, koefficienten för x är 5",
	},
	{
		ID:         "b_04",
		Question:   "Lös ekvationen: x² - 9 = 0. Vad är den positiva lösningen?",
		QuestionEn: "Solve: x² - 9 = 0. What is the positive solution?",
		Answer:     "3",
		Type:       TypeAlgebra,
		Level:      LevelB,
	},
	{
		ID:         "b_05",
		Question:   "Beräkna volymen av en kub med sidan 4 cm (i cm³)",
		QuestionEn: "Calculate the volume of a cube with side 4 cm (in cm³)",
		Answer:     "64",
		Type:       TypeGeometry,
		Level:      LevelB,
	},
	{
		ID:         "b_06",
		Question:   "En cirkel har radie 5 cm. Vad är arean? (Använd π ≈ 3.14, avrunda till heltal)",
		QuestionEn: "A circle has radius 5 cm. What is the area? (Use π ≈ 3.14, round to integer)",
		Answer:     "79",
		Type:       TypeGeometry,
		Level:      LevelB,
		Hint:       "Area = πr²",
	},
	{
		ID:         "b_07",
		Question:   "Pythagoras: En rätvinklig triangel har kateterna 3 och 4. Vad är hypotenusan?",
		QuestionEn: "Pythagoras: A right triangle has legs 3 and 4. What is the hypotenuse?",
		Answer:     "5",
		Type:       TypeGeometry,
		Level:      LevelB,
	},
	{
		ID:         "b_08",
		Question:   "Beräkna medelvärdet av talen: 4, 8, 12, 16",
		QuestionEn: "Calculate the mean of: 4, 8, 12, 16",
		Answer:     "10",
		Type:       TypeStatistics,
		Level:      LevelB,
	},
}

var levelCQuestions = []Question{
	{
		ID:         "c_01",
		Question:   "Lös ekvationen: x² - 5x + 6 = 0. Vad är summan av lösningarna?",
		QuestionEn: "Solve: x² - 5x + 6 = 0. What is the sum of the solutions?",
		Answer:     "5",
		Type:       TypeAlgebra,
		Level:      LevelC,
		Hint:       "Lösningarna är x = 2 och x = 3",
	},
	{
		ID:         "c_02",
		Question:   "Lös ekvationen: 2^x = 16. Vad är x?",
		QuestionEn: "Solve: 2^x = 16. What is x?",
		Answer:     "4",
		Type:       TypeAlgebra,
		Level:      LevelC,
	},
	{
		ID:         "c_03",
		Question:   "För funktionen f(x) = x² + 4x + 3, vad är x-koordinaten för symmetrilinjen?",
		QuestionEn: "For the function f(x) = x² + 4x + 3, what is the x-coordinate of the line of symmetry?",
		Answer:     "-2",
		Type:       TypeAlgebra,
		Level:      LevelC,
		Hint:       "x = -b/(2a)",
	},
	{
		ID:         "c_04",
		Question:   "Lös ekvationen: log₂(x) = 5. Vad är x?",
		QuestionEn: "Solve: log₂(x) = 5. What is x?",
		Answer:     "32",
		Type:       TypeAlgebra,
		Level:      LevelC,
	},
	{
		ID:         "c_05",
		Question:   "En kon har radie 3 cm och höjd 4 cm. Vad är volymen? (Använd π ≈ 3.14, avrunda till heltal)",
		QuestionEn: "A cone has radius 3 cm and height 4 cm. What is the volume? (Use π ≈ 3.14, round to integer)",
		Answer:     "38",
		Type:       TypeGeometry,
		Level:      LevelC,
		Hint:       "V = (1/3)πr²h",
	},
	{
		ID:         "c_06",
		Question:   "En sfär har radie 3 cm. Vad är volymen? (Använd π ≈ 3.14, avrunda till heltal)",
		QuestionEn: "A sphere has radius 3 cm. What is the volume? (Use π ≈ 3.14, round to integer)",
		Answer:     "113",
		Type:       TypeGeometry,
		Level:      LevelC,
		Hint:       "V = (4/3)πr³",
	},
	{
		ID:         "c_07",
		Question:   "Sannolikheten att få två sexor i rad med en tärning är 1/x. Vad är x?",
		QuestionEn: "The probability of rolling two sixes in a row with a die is 1/x. What is x?",
		Answer:     "36",
		Type:       TypeStatistics,
		Level:      LevelC,
		Hint:       "(1/6) × (1/6) = 1/36",
	},
}

var universityQuestions = []Question{
	{
		ID:         "u_01",
		Question:   "Derivera f(x) = x³. Vad är f'(2)?",
		QuestionEn: "Differentiate f(x) = x³. What is f'(2)?",
		Answer:     "12",
		Type:       TypeCalculus,
		Level:      LevelUniversity,
		Hint:       "f'(x) = 3x²",
	},
	{
		ID:         "u_02",
		Question:   "Derivera f(x) = 2x² + 3x. Vad är f'(1)?",
		QuestionEn: "Differentiate f(x) = 2x² + 3x. What is f'(1)?",
		Answer:     "7",
		Type:       TypeCalculus,
		Level:      LevelUniversity,
		Hint:       "f'(x) = 4x + 3",
	},
	{
		ID:         "u_03",
		Question:   "Beräkna integralen av f(x) = x från 0 till 2. Vad är resultatet?",
		QuestionEn: "Calculate the integral of f(x) = x from 0 to 2. What is the result?",
		Answer:     "2",
		Type:       TypeCalculus,
		Level:      LevelUniversity,
		Hint:       "∫x dx = x²/2",
	},
	{
		ID:         "u_04",
		Question:   "Derivera f(x) = sin(x). Vad är f'(0)?",
		QuestionEn: "Differentiate f(x) = sin(x). What is f'(0)?",
		Answer:     "1",
		Type:       TypeCalculus,
		Level:      LevelUniversity,
		Hint:       "f'(x) = cos(x), cos(0) = 1",
	},
	{
		ID:         "u_05",
		Question:   "Vad är gränsvärdet av (x² - 4)/(x - 2) när x går mot 2?",
		QuestionEn: "What is the limit of (x² - 4)/(x - 2) as x approaches 2?",
		Answer:     "4",
		Type:       TypeCalculus,
		Level:      LevelUniversity,
		Hint:       "Förkorta: (x-2)(x+2)/(x-2) = x+2",
	},
}

var catalog = map[Level][]Question{
	LevelA:          levelAQuestions,
	LevelB:          levelBQuestions,
	LevelC:          levelCQuestions,
	LevelUniversity: universityQuestions,
}

var byID = func() map[string]Question {
	m := make(map[string]Question)
	for _, pool := range catalog {
		for _, q := range pool {
			m[q.ID] = q
		}
	}
	return m
}()

// ByLevel returns the full question pool for a difficulty tier.
func ByLevel(level Level) []Question {
	return catalog[level]
}

// ByID looks a question up by its catalog id.
func ByID(id string) (Question, bool) {
	q, ok := byID[id]
	return q, ok
}
