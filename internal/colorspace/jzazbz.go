package colorspace

import "math"

// JzAzBz after Safdar et al. 2017. XYZ is relative (Y=1 for the D65 white)
// and scaled to absolute luminance by jzReferenceWhite cd/m².
const (
	jzReferenceWhite = 100.0

	jzB  = 1.15
	jzG  = 0.66
	jzD  = -0.56
	jzD0 = 1.6295499532821566e-11

	pqC1 = 3424.0 / 4096.0
	pqC2 = 2413.0 / 128.0
	pqC3 = 2392.0 / 128.0
	pqN  = 2610.0 / 16384.0
	pqP  = 1.7 * 2523.0 / 32.0
)

type mat3 [3][3]float64

var (
	jzXYZToLMS = mat3{
		{0.41478972, 0.579999, 0.0146480},
		{-0.2015100, 1.120649, 0.0531008},
		{-0.0166008, 0.264800, 0.6684799},
	}
	jzLMSToIab = mat3{
		{0.5, 0.5, 0},
		{3.524000, -4.066708, 0.542708},
		{0.199076, 1.096799, -1.295875},
	}
	jzLMSToXYZ = jzXYZToLMS.inverse()
	jzIabToLMS = jzLMSToIab.inverse()
)

func (m mat3) mul(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m mat3) inverse() mat3 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	A := e*i - f*h
	B := -(d*i - f*g)
	C := d*h - e*g
	det := a*A + b*B + c*C

	return mat3{
		{A / det, -(b*i - c*h) / det, (b*f - c*e) / det},
		{B / det, (a*i - c*g) / det, -(a*f - c*d) / det},
		{C / det, -(a*h - b*g) / det, (a*e - b*d) / det},
	}
}

// spow raises |x| to e and restores the sign so out-of-gamut values survive.
func spow(x, e float64) float64 {
	if x < 0 {
		return -math.Pow(-x, e)
	}
	return math.Pow(x, e)
}

func pqEncode(x float64) float64 {
	xn := spow(x/10000, pqN)
	return spow((pqC1+pqC2*xn)/(1+pqC3*xn), pqP)
}

func pqDecode(v float64) float64 {
	vp := spow(v, 1/pqP)
	return 10000 * spow((pqC1-vp)/(pqC3*vp-pqC2), 1/pqN)
}

// xyzToJzazbz converts relative D65 XYZ into Jz, az, bz.
func xyzToJzazbz(x, y, z float64) (jz, az, bz float64) {
	x, y, z = x*jzReferenceWhite, y*jzReferenceWhite, z*jzReferenceWhite

	xp := jzB*x - (jzB-1)*z
	yp := jzG*y - (jzG-1)*x

	lms := jzXYZToLMS.mul([3]float64{xp, yp, z})
	for i := range lms {
		lms[i] = pqEncode(lms[i])
	}

	iab := jzLMSToIab.mul(lms)
	iz := iab[0]
	jz = (1+jzD)*iz/(1+jzD*iz) - jzD0
	return jz, iab[1], iab[2]
}

// jzazbzToXYZ is the inverse of xyzToJzazbz.
func jzazbzToXYZ(jz, az, bz float64) (x, y, z float64) {
	jz += jzD0
	iz := jz / (1 + jzD - jzD*jz)

	lms := jzIabToLMS.mul([3]float64{iz, az, bz})
	for i := range lms {
		lms[i] = pqDecode(lms[i])
	}

	xyz := jzLMSToXYZ.mul(lms)
	xp, yp := xyz[0], xyz[1]
	z = xyz[2]
	x = (xp + (jzB-1)*z) / jzB
	y = (yp + (jzG-1)*x) / jzG

	return x / jzReferenceWhite, y / jzReferenceWhite, z / jzReferenceWhite
}

func xyzToJzczhz(x, y, z float64) (jz, cz, hz float64) {
	jz, az, bz := xyzToJzazbz(x, y, z)
	return jz, math.Hypot(az, bz), wrapHue(math.Atan2(bz, az) * 180 / math.Pi)
}

func jzczhzToXYZ(jz, cz, hz float64) (x, y, z float64) {
	rad := hz * math.Pi / 180
	return jzazbzToXYZ(jz, cz*math.Cos(rad), cz*math.Sin(rad))
}

// wrapHue maps any angle into [0, 360).
func wrapHue(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
