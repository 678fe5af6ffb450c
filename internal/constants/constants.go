package constants

const KBoltzmann float64 = 1.380649e-23 // [J K^-1]
const ElectronCharge = 1.602176565e-19  // [C]; numerically equal to eV -> J
const ElectronMass float64 = 9.1093897e-31             // [kg]
const FreeSpacePermittivityE0 float64 = 8.85418781762e-12 // [m^-3 kg^-1 s^4 A^2]
const StefanBoltzmann float64 = 5.67050e-8             // [W m^-2 K^-4]
const HBarPlanck float64 = 1.054571817e-34             // [J s]
const Quantile95 = 1.96

// Scale factors between practical TEC units and SI.
const (
	Micron2M      = 1e-6 // [m]
	Nm2M          = 1e-9 // [m]
	ACm2K2ToSI    = 1e4  // Richardson constant [A cm^-2 K^-2] -> [A m^-2 K^-2]
	ACm2ToSI      = 1e4  // current density [A cm^-2] -> [A m^-2]
	WCm2ToSI      = 1e4  // power density [W cm^-2] -> [W m^-2]
)
