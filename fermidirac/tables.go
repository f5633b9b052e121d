package fermidirac

import (
	"github.com/tuneinsight/specfun/chebyshev"
)

// Chebyshev fits on [-1, 1] in t.
var (
	// F_1(x), -1 < x < 1.
	f1A = chebyshev.Series{
		Coeffs: []float64{
			1.8949340668482264365,
			0.7237719066890052793,
			0.1250000000000000000,
			0.0101065196435973942,
			0.0,
			-0.0000600615242174119,
			0.0,
			6.816528764623e-7,
			0.0,
			-9.5895779195e-9,
			0.0,
			1.515104135e-10,
			0.0,
			-2.5785616e-12,
			0.0,
			4.62270e-14,
			0.0,
			-8.612e-16,
			0.0,
			1.65e-17,
			0.0,
			-3.e-19,
		},
		Order: 21,
		A:     -1,
		B:     1,
	}

	// F_1(3/2(t+1) + 1), 1 < x < 4.
	f1B = chebyshev.Series{
		Coeffs: []float64{
			10.409136795234611872,
			3.899445098225161947,
			0.513510935510521222,
			0.010618736770218426,
			-0.001584468020659694,
			0.000146139297161640,
			-1.408095734499e-6,
			-2.177993899484e-6,
			3.91423660640e-7,
			-2.3860262660e-8,
			-4.138309573e-9,
			1.283965236e-9,
			-1.39695990e-10,
			-4.907743e-12,
			4.399878e-12,
			-7.17291e-13,
			2.4320e-14,
			1.4230e-14,
			-3.446e-15,
			2.93e-16,
			3.7e-17,
			-1.6e-17,
		},
		Order: 21,
		A:     -1,
		B:     1,
	}

	// F_1(3(t+1) + 4), 4 < x < 10.
	f1C = chebyshev.Series{
		Coeffs: []float64{
			56.78099449124299762,
			21.00718468237668011,
			2.24592457063193457,
			0.00173793640425994,
			-0.00058716468739423,
			0.00016306958492437,
			-0.00003817425583020,
			7.64527252009e-6,
			-1.31348500162e-6,
			1.9000646056e-7,
			-2.141328223e-8,
			1.23906372e-9,
			2.1848049e-10,
			-1.0134282e-10,
			2.484728e-11,
			-4.73067e-12,
			7.3555e-13,
			-8.740e-14,
			4.85e-15,
			1.23e-15,
			-5.6e-16,
			1.4e-16,
			-3.e-17,
		},
		Order: 22,
		A:     -1,
		B:     1,
	}

	// F_1(x)/x^2, x = 10(t+2), 10 < x < 30.
	f1D = chebyshev.Series{
		Coeffs: []float64{
			1.0126626021151374442,
			-0.0063312525536433793,
			0.0024837319237084326,
			-0.0008764333697726109,
			0.0002913344438921266,
			-0.0000931877907705692,
			0.0000290151342040275,
			-8.8548707259955e-6,
			2.6603474114517e-6,
			-7.891415690452e-7,
			2.315730237195e-7,
			-6.73179452963e-8,
			1.94048035606e-8,
			-5.5507129189e-9,
			1.5766090896e-9,
			-4.449310875e-10,
			1.248292745e-10,
			-3.48392894e-11,
			9.6791550e-12,
			-2.6786240e-12,
			7.388852e-13,
			-2.032828e-13,
			5.58115e-14,
			-1.52987e-14,
			4.1886e-15,
			-1.1458e-15,
			3.132e-16,
			-8.56e-17,
			2.33e-17,
			-5.9e-18,
		},
		Order: 29,
		A:     -1,
		B:     1,
	}

	// F_1(x)/x^2, t = 60/x - 1, 30 < x < 1/sqrt(eps).
	f1E = chebyshev.Series{
		Coeffs: []float64{
			1.0013707783890401683,
			0.0009138522593601060,
			0.0002284630648400133,
			-1.57e-17,
			-1.27e-17,
			-9.7e-18,
			-6.9e-18,
			-4.6e-18,
			-2.9e-18,
			-1.7e-18,
		},
		Order: 9,
		A:     -1,
		B:     1,
	}

	// F_{1/2}(x), -1 < x < 1.
	fHalfA = chebyshev.Series{
		Coeffs: []float64{
			1.7177138871306189157,
			0.6192579515822668460,
			0.0932802275119206269,
			0.0047094853246636182,
			-0.0004243667967864481,
			-0.0000452569787686193,
			5.2426509519168e-6,
			6.387648249080e-7,
			-8.05777004848e-8,
			-1.04290272415e-8,
			1.3769478010e-9,
			1.847190359e-10,
			-2.51061890e-11,
			-3.4497818e-12,
			4.784373e-13,
			6.68828e-14,
			-9.4147e-15,
			-1.3333e-15,
			1.898e-16,
			2.72e-17,
			-3.9e-18,
			-6.e-19,
			1.e-19,
		},
		Order: 22,
		A:     -1,
		B:     1,
	}

	// F_{1/2}(3/2(t+1) + 1), 1 < x < 4.
	fHalfB = chebyshev.Series{
		Coeffs: []float64{
			7.651013792074984027,
			2.475545606866155737,
			0.218335982672476128,
			-0.007730591500584980,
			-0.000217443383867318,
			0.000147663980681359,
			-0.000021586361321527,
			8.07712735394e-7,
			3.28858050706e-7,
			-7.9474330632e-8,
			6.940207234e-9,
			6.75594681e-10,
			-3.10200490e-10,
			4.2677233e-11,
			-2.1696e-14,
			-1.170245e-12,
			2.34757e-13,
			-1.4139e-14,
			-3.864e-15,
			1.202e-15,
		},
		Order: 19,
		A:     -1,
		B:     1,
	}

	// F_{1/2}(3(t+1) + 4), 4 < x < 10.
	fHalfC = chebyshev.Series{
		Coeffs: []float64{
			29.584339348839816528,
			8.808344283250615592,
			0.503771641883577308,
			-0.021540694914550443,
			0.002143341709406890,
			-0.000257365680646579,
			0.000027933539372803,
			-1.678525030167e-6,
			-2.78100117693e-7,
			1.35218065147e-7,
			-3.3740425009e-8,
			6.474834942e-9,
			-1.009678978e-9,
			1.20057555e-10,
			-6.636314e-12,
			-1.710566e-12,
			7.75069e-13,
			-1.97973e-13,
			3.9414e-14,
			-6.374e-15,
			7.77e-16,
			-4.0e-17,
			-1.4e-17,
		},
		Order: 22,
		A:     -1,
		B:     1,
	}

	// F_{1/2}(x)/x^{3/2}, x = 10(t+2), 10 < x < 30.
	fHalfD = chebyshev.Series{
		Coeffs: []float64{
			1.5116909434145508537,
			-0.0036043405371630468,
			0.0014207743256393359,
			-0.0005045399052400260,
			0.0001690758006957347,
			-0.0000546305872688307,
			0.0000172223228484571,
			-5.3352603788706e-6,
			1.6315287543662e-6,
			-4.939021084898e-7,
			1.482515450316e-7,
			-4.41552276226e-8,
			1.30503160961e-8,
			-3.8262599802e-9,
			1.1123226976e-9,
			-3.204765534e-10,
			9.14870489e-11,
			-2.58778946e-11,
			7.2550731e-12,
			-2.0172226e-12,
			5.566891e-13,
			-1.526247e-13,
			4.16121e-14,
			-1.12933e-14,
			3.0537e-15,
			-8.234e-16,
			2.215e-16,
			-5.95e-17,
			1.59e-17,
			-4.0e-18,
		},
		Order: 29,
		A:     -1,
		B:     1,
	}

	// F_{3/2}(x), -1 < x < 1.
	f3HalfA = chebyshev.Series{
		Coeffs: []float64{
			2.0404775940601704976,
			0.8122168298093491444,
			0.1536371165644008069,
			0.0156174323847845125,
			0.0005943427879290297,
			-0.0000429609447738365,
			-3.8246452994606e-6,
			3.802306180287e-7,
			4.05746157593e-8,
			-4.5530360159e-9,
			-5.306873139e-10,
			6.37297268e-11,
			7.8403674e-12,
			-9.840241e-13,
			-1.255952e-13,
			1.62617e-14,
			2.1318e-15,
			-2.825e-16,
			-3.78e-17,
			5.1e-18,
		},
		Order: 19,
		A:     -1,
		B:     1,
	}

	// F_{3/2}(3/2(t+1) + 1), 1 < x < 4.
	f3HalfB = chebyshev.Series{
		Coeffs: []float64{
			13.403206654624176674,
			5.574508357051880924,
			0.931228574387527769,
			0.054638356514085862,
			-0.001477172902737439,
			-0.000029378553381869,
			0.000018357033493246,
			-2.348059218454e-6,
			8.3173787440e-8,
			2.6826486956e-8,
			-6.011244398e-9,
			4.94345981e-10,
			3.9557340e-11,
			-1.7894930e-11,
			2.348972e-12,
			-1.2823e-14,
			-5.4192e-14,
			1.0527e-14,
			-6.39e-16,
			-1.47e-16,
			4.5e-17,
			-5.e-18,
		},
		Order: 21,
		A:     -1,
		B:     1,
	}

	// F_{3/2}(3(t+1) + 4), 4 < x < 10.
	f3HalfC = chebyshev.Series{
		Coeffs: []float64{
			101.03685253378877642,
			43.62085156043435883,
			6.62241373362387453,
			0.25081415008708521,
			-0.00798124846271395,
			0.00063462245101023,
			-0.00006392178890410,
			6.04535131939e-6,
			-3.4007683037e-7,
			-4.072661545e-8,
			1.931148453e-8,
			-4.46328355e-9,
			7.9434717e-10,
			-1.1573569e-10,
			1.304658e-11,
			-7.4114e-13,
			-1.4181e-13,
			6.491e-14,
			-1.597e-14,
			3.05e-15,
			-4.8e-16,
		},
		Order: 20,
		A:     -1,
		B:     1,
	}

	// F_{3/2}(x)/x^{5/2}, x = 10(t+2), 10 < x < 30.
	f3HalfD = chebyshev.Series{
		Coeffs: []float64{
			0.6160645215171852381,
			-0.0071239478492671463,
			0.0027906866139659846,
			-0.0009829521424317718,
			0.0003260229808519545,
			-0.0001040160912910890,
			0.0000322931223232439,
			-9.8243506588102e-6,
			2.9420132351277e-6,
			-8.699154670418e-7,
			2.545460071999e-7,
			-7.38305056331e-8,
			2.12545670310e-8,
			-6.0796532462e-9,
			1.7294556741e-9,
			-4.896540687e-10,
			1.380786037e-10,
			-3.88057305e-11,
			1.08753212e-11,
			-3.0407308e-12,
			8.485626e-13,
			-2.364275e-13,
			6.57636e-14,
			-1.81807e-14,
			4.6884e-15,
		},
		Order: 24,
		A:     -1,
		B:     1,
	}
)
